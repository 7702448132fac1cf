package wscutils

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Request represents the standard structure of a request to the web service.
type Request struct {
	Data any `json:"data" binding:"required"`
}

// Response represents the standard structure of a response of the web service.
type Response struct {
	Status   string         `json:"status"`
	Data     any            `json:"data"`
	Messages []ErrorMessage `json:"messages"`
}

// ErrorMessage defines the format of error part of the standard response object.
// Field names the request field the error is about and Vals carries the values a
// client needs to render its message template.
type ErrorMessage struct {
	MsgID   int      `json:"msgid"`
	ErrCode string   `json:"errcode"`
	Field   string   `json:"field,omitempty"`
	Vals    []string `json:"vals,omitempty"`
}

var (
	mu                       sync.RWMutex
	validationTagToMsgID     = map[string]int{}
	validationTagToErrCode   = map[string]string{}
	defaultMsgID             = DefaultMsgID
	defaultErrCode           = ErrcodeUnknown
	msgIDInvalidJSON         = ErrMsgIDInvalidJson
	errCodeInvalidJSON       = ErrcodeInvalidJson
	validate                 = validator.New()
	validatorRegistrationsMu sync.Mutex
)

// SetValidationTagToMsgIDMap sets the message ID reported for each validator tag.
func SetValidationTagToMsgIDMap(m map[string]int) {
	mu.Lock()
	defer mu.Unlock()
	validationTagToMsgID = m
}

// SetValidationTagToErrCodeMap sets the error code reported for each validator tag.
func SetValidationTagToErrCodeMap(m map[string]string) {
	mu.Lock()
	defer mu.Unlock()
	validationTagToErrCode = m
}

// SetDefaultMsgID sets the message ID used for tags with no mapping.
func SetDefaultMsgID(id int) {
	mu.Lock()
	defer mu.Unlock()
	defaultMsgID = id
}

// SetDefaultErrCode sets the error code used for tags with no mapping.
func SetDefaultErrCode(code string) {
	mu.Lock()
	defer mu.Unlock()
	defaultErrCode = code
}

// SetMsgIDInvalidJSON sets the message ID of the invalid JSON error.
func SetMsgIDInvalidJSON(id int) {
	mu.Lock()
	defer mu.Unlock()
	msgIDInvalidJSON = id
}

// SetErrCodeInvalidJSON sets the error code of the invalid JSON error.
func SetErrCodeInvalidJSON(code string) {
	mu.Lock()
	defer mu.Unlock()
	errCodeInvalidJSON = code
}

// errorCatalogue is the YAML layout read by LoadErrorTypes.
type errorCatalogue struct {
	Default struct {
		MsgID   int    `yaml:"msgid"`
		ErrCode string `yaml:"errcode"`
	} `yaml:"default"`
	Tags map[string]struct {
		MsgID   int    `yaml:"msgid"`
		ErrCode string `yaml:"errcode"`
	} `yaml:"tags"`
}

// LoadErrorTypes reads validator tag mappings from YAML:
//
//	default:
//	  msgid: 9999
//	  errcode: invalid
//	tags:
//	  required: {msgid: 101, errcode: required}
func LoadErrorTypes(r io.Reader) error {
	byteValue, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read error types: %w", err)
	}

	var cat errorCatalogue
	if err := yaml.Unmarshal(byteValue, &cat); err != nil {
		return fmt.Errorf("failed to parse error types: %w", err)
	}

	msgIDs := make(map[string]int, len(cat.Tags))
	errCodes := make(map[string]string, len(cat.Tags))
	for tag, t := range cat.Tags {
		msgIDs[tag] = t.MsgID
		errCodes[tag] = t.ErrCode
	}
	SetValidationTagToMsgIDMap(msgIDs)
	SetValidationTagToErrCodeMap(errCodes)
	if cat.Default.MsgID != 0 {
		SetDefaultMsgID(cat.Default.MsgID)
	}
	if cat.Default.ErrCode != "" {
		SetDefaultErrCode(cat.Default.ErrCode)
	}
	return nil
}

// RegisterValidation adds a custom validator tag to the validator used by WscValidate.
func RegisterValidation(tag string, fn validator.Func) error {
	validatorRegistrationsMu.Lock()
	defer validatorRegistrationsMu.Unlock()
	return validate.RegisterValidation(tag, fn)
}

// WscValidate is a generic function that accepts any data structure,
// validates it according to struct tag-provided validation rules
// and returns a slice of ErrorMessage in case of validation errors.
// getVals supplies the request-specific vals of each error.
func WscValidate[T any](data T, getVals func(err validator.FieldError) []string) []ErrorMessage {
	var validationErrors []ErrorMessage

	err := validate.Struct(data)

	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, err := range validationErrs {
				// We handle validation error creation for developers.
				vals := getVals(err)
				msgID, errCode := lookupTag(err.Tag())
				validationErrors = append(validationErrors, BuildErrorMessage(msgID, errCode, err.Field(), vals...))
			}
		}
	}
	return validationErrors
}

func lookupTag(tag string) (int, string) {
	mu.RLock()
	defer mu.RUnlock()

	msgID, ok := validationTagToMsgID[tag]
	if !ok {
		msgID = defaultMsgID
	}
	errCode, ok := validationTagToErrCode[tag]
	if !ok {
		errCode = defaultErrCode
	}
	return msgID, errCode
}

// BuildErrorMessage generates an ErrorMessage. An empty fieldName is omitted from the response.
//
// Examples:
//
//	BuildErrorMessage(1001, "invalid_json", "")
//	BuildErrorMessage(1003, "invalid_amount", "amount", "12a")
func BuildErrorMessage(msgid int, errcode string, fieldName string, vals ...string) ErrorMessage {
	return ErrorMessage{
		MsgID:   msgid,
		ErrCode: errcode,
		Field:   fieldName,
		Vals:    vals,
	}
}

// NewResponse is a helper function to create a new web service response
// and any error messages that might need to be sent back to the client. It allows
// for a consistent structure in all API responses
func NewResponse(status string, data any, messages []ErrorMessage) *Response {
	return &Response{
		Status:   status,
		Data:     data,
		Messages: messages,
	}
}

// BindJSON provides a standard way of binding incoming JSON data to a
// given request data structure. On failure it sends the invalid JSON response itself.
func BindJSON(c *gin.Context, data any) error {
	req := Request{Data: data}
	if err := c.ShouldBindJSON(&req); err != nil {
		mu.RLock()
		invalidJSONError := BuildErrorMessage(msgIDInvalidJSON, errCodeInvalidJSON, "")
		mu.RUnlock()
		c.JSON(http.StatusBadRequest, NewResponse(ErrorStatus, nil, []ErrorMessage{invalidJSONError}))
		return err
	}
	return nil
}

// NewErrorResponse simplifies the process of creating a standard error response
// with a single error message
func NewErrorResponse(msgid int, errcode string) *Response {
	return NewResponse(ErrorStatus, nil, []ErrorMessage{BuildErrorMessage(msgid, errcode, "")})
}

// NewSuccessResponse simplifies the process of creating a standard success response
func NewSuccessResponse(data any) *Response {
	return NewResponse(SuccessStatus, data, nil)
}

// SendSuccessResponse sends a JSON response.
func SendSuccessResponse(c *gin.Context, response *Response) {
	c.JSON(http.StatusOK, response)
}

// SendErrorResponse sends a JSON error response.
func SendErrorResponse(c *gin.Context, response *Response) {
	c.JSON(http.StatusBadRequest, response)
}
