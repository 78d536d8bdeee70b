package model

// InvalidInputError signals an event that breaks the contract of the score
// producer, such as a chord without tones or an undeclared kind.
type InvalidInputError struct {
	Reason string
}

func NewInvalidInputError(reason string) *InvalidInputError {
	return &InvalidInputError{Reason: reason}
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}
