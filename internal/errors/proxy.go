package errors

var (
	ErrBackendUnreachable = &DomainError{
		Code:    "BACKEND_UNREACHABLE",
		Message: "treasury backend could not be reached",
	}
	ErrLoginRedirected = &DomainError{
		Code:    "LOGIN_REDIRECTED",
		Message: `This account requires Google authentication. Please use "Continue with Google" to sign in.`,
	}
	ErrSessionNotFound = &DomainError{
		Code:    "SESSION_NOT_FOUND",
		Message: "no active session",
	}
)
