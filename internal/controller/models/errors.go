package models

import "fmt"

var (
	ErrorCredentialsAuthenticationFailed = fmt.Errorf("credentials_authentication_failed")
	ErrorDatabaseUndefined               = fmt.Errorf("database_undefined")
	ErrorDeleteFailed                    = fmt.Errorf("delete_failed")
	ErrorDuplicateEntry                  = fmt.Errorf("duplicate_entry")
	ErrorInsertFailed                    = fmt.Errorf("insert_failed")
	ErrorInvalidInput                    = fmt.Errorf("invalid_input")
	ErrorMfaAuthenticationFailed         = fmt.Errorf("mfa_authentication_failed")
	ErrorMfaTokenRequired                = fmt.Errorf("mfa_token_required")
	ErrorNotFound                        = fmt.Errorf("not_found")
	ErrorRowsAffectedCheckFailed         = fmt.Errorf("rows_affected_check_failed")
	ErrorSelectFailed                    = fmt.Errorf("select_failed")
	ErrorSessionExpired                  = fmt.Errorf("session_expired")
	ErrorStmtPreparationFailed           = fmt.Errorf("stmt_preparation_failed")
	ErrorUpdateFailed                    = fmt.Errorf("update_failed")

	errorInputValidationFailed = fmt.Errorf("input_validation_failed")

	mysqlErrorDuplicateEntryCode uint16 = 1062
)
