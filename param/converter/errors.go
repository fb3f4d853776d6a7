package converter

import (
	"errors"
	"fmt"

	"github.com/viant/paramconv/param/types"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrConversionFailed is matched by every conversion failure.
	ErrConversionFailed = errors.New("parameter conversion failed")

	// ErrNoConverter indicates no converter accepts the requested type.
	ErrNoConverter = errors.New("no parameter converter")

	// ErrUnknownConstant indicates an enumeration has no such constant.
	ErrUnknownConstant = errors.New("unknown enumeration constant")

	// ErrNoRows indicates a table produced no row for a scalar target.
	ErrNoRows = errors.New("examples table has no rows")

	// ErrCollectionConstruction indicates a collection could not be created.
	ErrCollectionConstruction = errors.New("collection construction failed")
)

// ConversionError is the single failure kind raised by conversions. It
// matches ErrConversionFailed and, through Cause, the underlying error.
type ConversionError struct {
	Message string
	Value   string
	Type    *types.Type
	Cause   error
}

func (e *ConversionError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("failed to convert %q to %v", e.Value, e.Type)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ConversionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrConversionFailed}
	}
	return []error{ErrConversionFailed, e.Cause}
}

// NewError creates a ConversionError.
func NewError(message, value string, t *types.Type, cause error) error {
	return &ConversionError{
		Message: message,
		Value:   value,
		Type:    t,
		Cause:   cause,
	}
}
