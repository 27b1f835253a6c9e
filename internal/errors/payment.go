package errors

var (
	ErrInvalidRecipient = &DomainError{
		Code:    "INVALID_RECIPIENT",
		Message: "recipient is not a valid wallet address",
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "amount must be a positive number",
	}
	ErrInvalidCategory = &DomainError{
		Code:    "INVALID_CATEGORY",
		Message: "dues category is not recognized",
	}
	ErrNoParticipants = &DomainError{
		Code:    "NO_PARTICIPANTS",
		Message: "at least one participant is required",
	}
	ErrReferenceGeneration = &DomainError{
		Code:    "REFERENCE_GENERATION",
		Message: "failed to generate payment reference",
	}
	ErrEncodeFailed = &DomainError{
		Code:    "ENCODE_FAILED",
		Message: "failed to encode payment URL",
	}
	ErrQRRenderFailed = &DomainError{
		Code:    "QR_RENDER_FAILED",
		Message: "failed to render QR code",
	}
)
