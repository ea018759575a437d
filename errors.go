package gomiio

import "fmt"

type MiioError struct {
	Message string
	Err     error
}

func (e *MiioError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("miio error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("miio error: %s", e.Message)
}

func (e *MiioError) Unwrap() error {
	return e.Err
}

func NewMiioError(message string, err error) *MiioError {
	return &MiioError{
		Message: message,
		Err:     err,
	}
}

// DeviceError reports a device answering with something this package cannot use.
type DeviceError struct {
	*MiioError
}

// NewDeviceError reports an answer the device should not have given.
func NewDeviceError(message string, err error) *DeviceError {
	return &DeviceError{
		MiioError: NewMiioError(message, err),
	}
}

type ParseError struct {
	*MiioError
}

// NewParseError reports a response that could not be decoded.
func NewParseError(message string, err error) *ParseError {
	return &ParseError{
		MiioError: NewMiioError(message, err),
	}
}

// InvalidValueError is returned before any RPC is attempted when a caller
// supplies a value outside the domain a command accepts.
type InvalidValueError struct {
	*MiioError
	Field      string
	Value      any
	Constraint string
}

func NewInvalidValueError(field string, value any, constraint string) *InvalidValueError {
	return &InvalidValueError{
		MiioError:  NewMiioError(fmt.Sprintf("invalid %s %v: %s", field, value, constraint), nil),
		Field:      field,
		Value:      value,
		Constraint: constraint,
	}
}
