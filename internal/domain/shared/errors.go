package shared

// DomainError is a business rule violation with a stable machine-readable
// code. The HTTP layer maps codes to status codes; anything that is not a
// DomainError is treated as an internal fault and masked.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

var (
	// ErrNotFound is returned by repositories when a lookup misses.
	ErrNotFound = NewDomainError("NOT_FOUND", "Resource not found")
	// ErrInvariant marks a broken internal invariant, a programmer error
	// rather than bad input.
	ErrInvariant = NewDomainError("INVARIANT_VIOLATION", "Internal invariant violated")
)
