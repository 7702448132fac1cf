package convert

//-----------------------------------------------------------------------------
// Constants
//-----------------------------------------------------------------------------

const (
	// Error codes and message IDs
	ErrMsgIDRequired             = 101
	ErrCodeRequired              = "required"
	ErrMsgIDTooLong              = 102
	ErrCodeTooLong               = "too_long"
	ErrMsgIDTooMany              = 103
	ErrCodeTooMany               = "too_many"
	ErrMsgIDInvalidAmount        = 104
	ErrCodeInvalidAmount         = "invalid_amount"
	ErrMsgIDUnsupportedMagnitude = 105
	ErrCodeUnsupportedMagnitude  = "unsupported_magnitude"
	ErrMsgIDTimeout              = 106
	ErrCodeTimeout               = "timeout"

	// Request fields as reported in ErrorMessage.field
	FieldAmount  = "amount"
	FieldAmounts = "amounts"

	// batchWorkers bounds the conversions of one batch request running at once.
	batchWorkers = 8
)

/*
Example message templates for the errors above. The field name is already
available in ErrorMessage.field, so it is not included in vals.

required:              "This field is required"
too_long:              "Amount has @<vals[0]>@ characters, at most @<vals[1]>@ are allowed"
too_many:              "@<vals[0]>@ amounts sent, at most @<vals[1]>@ are allowed"
invalid_amount:        "Not a non-negative decimal amount: @<vals[0]>@"
unsupported_magnitude: "Amount @<vals[0]>@ is larger than 99 kharab"
timeout:               "The request took too long and was abandoned"
*/
