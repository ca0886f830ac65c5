package citation

import "errors"

var (
	ErrCitationNotFound        = errors.New("citation not found")
	ErrInvalidCitationState    = errors.New("citation cannot accept payment in its current state")
	ErrOverpaymentRejected     = errors.New("payment exceeds outstanding balance")
	ErrDuplicateCitationNumber = errors.New("duplicate citation number")
	ErrConstraintViolation     = errors.New("constraint violation")
)
