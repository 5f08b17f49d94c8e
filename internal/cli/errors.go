package cli

import "errors"

var (
	ErrorAuthError             = errors.New("auth_error")
	ErrorControllerUnavailable = errors.New("controller_unavailable")
	ErrorInvalidInput          = errors.New("invalid_input")
	ErrorNotAuthenticated      = errors.New("not_authenticated")
	ErrorUserCancelled         = errors.New("user_cancelled")
)
