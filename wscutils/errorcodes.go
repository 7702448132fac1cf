package wscutils

const (
	ErrcodeUnknown     = "unknown"
	ErrcodeInvalidJson = "invalid_json"
	ErrcodeInternalErr = "internal"
	ErrcodeMissing     = "missing"
)
