package models

// Error types consumed by helper.HTTPHelper.GetStatusCode; each maps to a
// single HTTP status. They are comparable values so callers can test them
// with errors.Is against the Err* sentinels below.

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string { return e.Message }

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

// ErrorAccountState covers login refusals caused by the account lifecycle
// rather than bad credentials.
type ErrorAccountState struct {
	Reason  string
	Message string
}

func (e ErrorAccountState) Error() string { return e.Message }

type ErrorUpload struct {
	Message string
}

func (e ErrorUpload) Error() string { return e.Message }

var (
	ErrInvalidCredentials = ErrorUnauthorized{Message: "invalid email or password"}
	ErrDuplicateAccount   = ErrorConflict{Message: "an account with this email already exists"}
	ErrAccountBlocked     = ErrorAccountState{Reason: "blocked", Message: "your account is blocked"}
	ErrAccountPending     = ErrorAccountState{Reason: "pending", Message: "account pending approval"}
	ErrAccountRejected    = ErrorAccountState{Reason: "rejected", Message: "account request rejected"}
	ErrArticleNotFound    = ErrorNotFound{Message: "article not found"}
	ErrUserNotFound       = ErrorNotFound{Message: "user not found"}
	ErrNotArticleAuthor   = ErrorForbidden{Message: "only the author or an admin may edit this article"}
	ErrMasterAdminLocked  = ErrorForbidden{Message: "the master admin account cannot be blocked"}
)
