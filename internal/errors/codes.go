package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeMalformedInput  Code = "MALFORMED_INPUT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
	CodeUnavailable     Code = "UNAVAILABLE"
	CodeCanceled        Code = "CANCELED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status the CLI uses for the code.
// Input problems exit with 2 so scripts can tell them apart from
// environment failures.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument, CodeMalformedInput, CodeNotFound:
		return 2
	case CodeUnavailable:
		return 3
	case CodeCanceled:
		return 130
	default:
		return 1
	}
}
