package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Validation Errors.

	// ErrInvalidAge indicates the age is not an integer between 1 and 125.
	ErrInvalidAge = errors.New("invalid age")

	// ErrMissingGender indicates no recognised gender was selected.
	ErrMissingGender = errors.New("missing gender")

	// ErrInvalidHeight indicates the height is unparseable or out of range.
	ErrInvalidHeight = errors.New("invalid height")

	// ErrInvalidWeight indicates the weight is unparseable or out of range.
	ErrInvalidWeight = errors.New("invalid weight")
)

// ValidationKind identifies which rejection a ValidationError represents.
type ValidationKind string

// Validation kinds, one per validated field group.
const (
	KindInvalidAge    ValidationKind = "InvalidAge"
	KindMissingGender ValidationKind = "MissingGender"
	KindInvalidHeight ValidationKind = "InvalidHeight"
	KindInvalidWeight ValidationKind = "InvalidWeight"
)

// String returns the string representation.
func (k ValidationKind) String() string {
	return string(k)
}

// Title returns the short heading shown alongside the message.
func (k ValidationKind) Title() string {
	switch k {
	case KindInvalidAge:
		return "Invalid Age"
	case KindMissingGender:
		return "Gender Required"
	case KindInvalidHeight:
		return "Invalid Height"
	case KindInvalidWeight:
		return "Invalid Weight"
	default:
		return unknownDescription
	}
}

// Sentinel returns the sentinel error matching the kind.
func (k ValidationKind) Sentinel() error {
	switch k {
	case KindInvalidAge:
		return ErrInvalidAge
	case KindMissingGender:
		return ErrMissingGender
	case KindInvalidHeight:
		return ErrInvalidHeight
	case KindInvalidWeight:
		return ErrInvalidWeight
	default:
		return ErrInvalidInput
	}
}

// ValidationError describes the first field that failed validation.
// It carries the raw value and the accepted bounds so callers can
// re-prompt without re-deriving them.
type ValidationError struct {
	// Field is the RawInput field name (json form), e.g. "heightFeet".
	Field string `json:"field"`

	// Kind is the rejection category.
	Kind ValidationKind `json:"kind"`

	// Value is the raw, untrimmed value that was rejected.
	Value string `json:"value"`

	// Min and Max are the inclusive numeric bounds. Nil for enum fields.
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`

	// Allowed lists accepted values for enum fields.
	Allowed []string `json:"allowed,omitempty"`

	// Message is the user-facing explanation.
	Message string `json:"message"`
}

// Bounds returns the numeric bounds and whether the field has any.
func (e *ValidationError) Bounds() (Bounds, bool) {
	if e.Min == nil || e.Max == nil {
		return Bounds{}, false
	}
	return Bounds{Min: *e.Min, Max: *e.Max}, true
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap allows errors.Is against the kind's sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Kind.Sentinel()
}

// AsValidationError extracts a *ValidationError from err, if present.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
