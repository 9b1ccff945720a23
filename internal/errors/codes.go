package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeSchemaViolation    Code = "SCHEMA_VIOLATION"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeInternal           Code = "INTERNAL"
)

// Process exit statuses returned by ExitCode
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitUsage           = 2
	ExitSchemaViolation = 3
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status for the code
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return ExitOK
	case CodeInvalidArgument:
		return ExitUsage
	case CodeSchemaViolation:
		return ExitSchemaViolation
	default:
		return ExitFailure
	}
}
