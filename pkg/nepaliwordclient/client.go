// Package nepaliwordclient calls a running nepaliword service over HTTP.
package nepaliwordclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	BaseURL string
	Client  *resty.Client
}

// New returns a Client for the service at baseURL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  resty.New().SetTimeout(30 * time.Second),
	}
}

type Result struct {
	Amount   string `json:"amount"`
	AmountNP string `json:"amount_np"`
	Words    string `json:"words"`
}

type BatchItem struct {
	Input  string        `json:"input"`
	Result *Result       `json:"result,omitempty"`
	Error  *ErrorMessage `json:"error,omitempty"`
}

type ErrorMessage struct {
	MsgID   int      `json:"msgid"`
	ErrCode string   `json:"errcode"`
	Field   string   `json:"field,omitempty"`
	Vals    []string `json:"vals,omitempty"`
}

func (e ErrorMessage) String() string {
	s := e.ErrCode
	if e.Field != "" {
		s = e.Field + ": " + s
	}
	if len(e.Vals) > 0 {
		s += " (" + strings.Join(e.Vals, ", ") + ")"
	}
	return s
}

type response[T any] struct {
	Status   string         `json:"status"`
	Data     T              `json:"data"`
	Messages []ErrorMessage `json:"messages"`
}

// ServiceError is returned when the service answers with an error response.
type ServiceError struct {
	StatusCode int
	Messages   []ErrorMessage
}

func (e *ServiceError) Error() string {
	parts := make([]string, len(e.Messages))
	for i, m := range e.Messages {
		parts[i] = m.String()
	}
	return fmt.Sprintf("nepaliword service returned %d: %s", e.StatusCode, strings.Join(parts, "; "))
}

// Convert asks the service for the words of amount.
func (c *Client) Convert(ctx context.Context, amount string) (*Result, error) {
	var out response[Result]
	resp, err := c.Client.R().
		SetContext(ctx).
		SetBody(map[string]any{"data": map[string]string{"amount": amount}}).
		SetResult(&out).
		SetError(&out).
		Post(c.BaseURL + "/nepaliword/convert")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &ServiceError{StatusCode: resp.StatusCode(), Messages: out.Messages}
	}
	return &out.Data, nil
}

// ConvertPath is Convert through the GET endpoint.
func (c *Client) ConvertPath(ctx context.Context, amount string) (*Result, error) {
	var out response[Result]
	resp, err := c.Client.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&out).
		Get(c.BaseURL + "/nepaliword/convert/" + url.PathEscape(amount))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &ServiceError{StatusCode: resp.StatusCode(), Messages: out.Messages}
	}
	return &out.Data, nil
}

// ConvertBatch converts amounts in one request. Items come back in the order sent.
func (c *Client) ConvertBatch(ctx context.Context, amounts []string) ([]BatchItem, error) {
	var out response[struct {
		Items []BatchItem `json:"items"`
	}]
	resp, err := c.Client.R().
		SetContext(ctx).
		SetBody(map[string]any{"data": map[string][]string{"amounts": amounts}}).
		SetResult(&out).
		SetError(&out).
		Post(c.BaseURL + "/nepaliword/convert/batch")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &ServiceError{StatusCode: resp.StatusCode(), Messages: out.Messages}
	}
	return out.Data.Items, nil
}
