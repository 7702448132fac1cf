package wscutils

// Error message IDs
const (
	ErrMsgIDInvalidJson = 1001 // Represents an invalid JSON error
	ErrMsgIDInternalErr = 1002 // Represents an unexpected server side error
)

const DefaultMsgID = 9999 // Default message ID for unspecified validation errors

// Response statuses
const (
	SuccessStatus = "success"
	ErrorStatus   = "error"
)
