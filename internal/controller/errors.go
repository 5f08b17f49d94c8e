package controller

import "errors"

var (
	ErrorAuthRequired               = errors.New("auth_required")
	ErrorGeneric                    = errors.New("generic_error")
	ErrorInsufficientPermissions    = errors.New("insufficient_permissions")
	ErrorMfaTokenRequired           = errors.New("mfa_token_required")
	ErrorMissingDatabaseConnection  = errors.New("missing_database_connection")
	ErrorMissingServiceLog          = errors.New("missing_service_log")
	ErrorMissingSessionSigningToken = errors.New("missing_session_signing_token")
)
