package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeAlreadyExists   Code = "ALREADY_EXISTS"
	CodeOutOfRange      Code = "OUT_OF_RANGE"
	CodeInternal        Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
