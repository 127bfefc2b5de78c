package errors

// Code classifies an error. Callers branch on the code, never on message text.
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeDataLoss           Code = "DATA_LOSS"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsUserFacing reports whether errors with this code describe a mistake in
// player input. Those are reported back to the player and the game carries on.
func (c Code) IsUserFacing() bool {
	return c == CodeInvalidArgument || c == CodeNotFound
}
