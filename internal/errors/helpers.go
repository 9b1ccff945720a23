package errors

import (
	"errors"
)

// GetCode returns the code of the outermost *Error in err's chain. nil is
// OK; an error from outside this package is Internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var coded *Error
	if !errors.As(err, &coded) {
		return CodeInternal
	}
	return coded.Code
}

// GetMeta returns the metadata of the outermost *Error in err's chain
func GetMeta(err error) map[string]interface{} {
	var coded *Error
	if !errors.As(err, &coded) {
		return nil
	}
	return coded.Meta
}

func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

func IsSchemaViolation(err error) bool {
	return GetCode(err) == CodeSchemaViolation
}

func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}
