package wscutils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestUser struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

func setupValidation() {
	SetValidationTagToMsgIDMap(map[string]int{
		"required": 101,
		"email":    102,
	})
	SetValidationTagToErrCodeMap(map[string]string{
		"required": "required",
		"email":    "email",
	})
	SetDefaultMsgID(DefaultMsgID)
	SetDefaultErrCode(ErrcodeUnknown)
	SetMsgIDInvalidJSON(ErrMsgIDInvalidJson)
	SetErrCodeInvalidJSON(ErrcodeInvalidJson)
}

func noVals(validator.FieldError) []string { return nil }

func TestWscValidate(t *testing.T) {
	setupValidation()

	tests := []struct {
		name string
		user TestUser
		want []ErrorMessage
	}{
		{
			name: "valid user",
			user: TestUser{Name: "Ram", Email: "ram@example.com"},
			want: nil,
		},
		{
			name: "missing name",
			user: TestUser{Email: "ram@example.com"},
			want: []ErrorMessage{{MsgID: 101, ErrCode: "required", Field: "Name"}},
		},
		{
			name: "bad email",
			user: TestUser{Name: "Ram", Email: "ram"},
			want: []ErrorMessage{{MsgID: 102, ErrCode: "email", Field: "Email", Vals: []string{"ram"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WscValidate(tt.user, func(err validator.FieldError) []string {
				if err.Tag() == "email" {
					return []string{err.Value().(string)}
				}
				return nil
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWscValidateDefaultMapping(t *testing.T) {
	setupValidation()
	SetValidationTagToMsgIDMap(map[string]int{})
	SetValidationTagToErrCodeMap(map[string]string{})
	defer setupValidation()

	got := WscValidate(TestUser{Email: "ram@example.com"}, noVals)
	require.Len(t, got, 1)
	assert.Equal(t, DefaultMsgID, got[0].MsgID)
	assert.Equal(t, ErrcodeUnknown, got[0].ErrCode)
}

func TestLoadErrorTypes(t *testing.T) {
	defer setupValidation()

	err := LoadErrorTypes(strings.NewReader(`
default:
  msgid: 5000
  errcode: invalid
tags:
  required:
    msgid: 201
    errcode: missing
`))
	require.NoError(t, err)

	got := WscValidate(TestUser{Email: "x"}, noVals)
	require.Len(t, got, 2)
	assert.Equal(t, ErrorMessage{MsgID: 201, ErrCode: "missing", Field: "Name"}, got[0])
	assert.Equal(t, ErrorMessage{MsgID: 5000, ErrCode: "invalid", Field: "Email"}, got[1])

	assert.Error(t, LoadErrorTypes(strings.NewReader("tags: [")))
}

func TestBuildErrorMessage(t *testing.T) {
	got := BuildErrorMessage(1003, "invalid_amount", "amount", "12a")
	assert.Equal(t, ErrorMessage{MsgID: 1003, ErrCode: "invalid_amount", Field: "amount", Vals: []string{"12a"}}, got)

	got = BuildErrorMessage(1001, "invalid_json", "")
	assert.Empty(t, got.Field)
	assert.Nil(t, got.Vals)
}

func TestNewErrorResponse(t *testing.T) {
	got := NewErrorResponse(1002, ErrcodeInternalErr)
	assert.Equal(t, ErrorStatus, got.Status)
	assert.Nil(t, got.Data)
	assert.Equal(t, []ErrorMessage{{MsgID: 1002, ErrCode: ErrcodeInternalErr}}, got.Messages)
}

func TestSendSuccessResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SendSuccessResponse(c, NewSuccessResponse(map[string]string{"words": "एक सय"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","data":{"words":"एक सय"},"messages":null}`, w.Body.String())
}

func TestSendErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SendErrorResponse(c, NewResponse(ErrorStatus, nil, []ErrorMessage{BuildErrorMessage(1003, "invalid_amount", "amount")}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"error","data":null,"messages":[{"msgid":1003,"errcode":"invalid_amount","field":"amount"}]}`, w.Body.String())
}

func TestBindJSON_Success(t *testing.T) {
	setupValidation()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/", strings.NewReader(`{"data":{"Name":"Ram","Email":"ram@example.com"}}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var user TestUser
	require.NoError(t, BindJSON(c, &user))
	assert.Equal(t, TestUser{Name: "Ram", Email: "ram@example.com"}, user)
}

func TestBindJSON_InvalidJSON(t *testing.T) {
	setupValidation()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/", strings.NewReader(`{"data":`))
	c.Request.Header.Set("Content-Type", "application/json")

	var user TestUser
	assert.Error(t, BindJSON(c, &user))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"error","data":null,"messages":[{"msgid":1001,"errcode":"invalid_json"}]}`, w.Body.String())
}
