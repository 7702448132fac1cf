// Package convert serves the amount-to-words conversion endpoints.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/govalues/decimal"
	"github.com/rahack95/OSSRH-63090/cache"
	"github.com/rahack95/OSSRH-63090/metrics"
	"github.com/rahack95/OSSRH-63090/nepaliword"
	"github.com/rahack95/OSSRH-63090/service"
	"github.com/rahack95/OSSRH-63090/validations"
	"github.com/rahack95/OSSRH-63090/wscutils"
	"github.com/remiges-tech/logharbour/logharbour"
	"golang.org/x/sync/errgroup"
)

//-----------------------------------------------------------------------------
// Request and response types
//-----------------------------------------------------------------------------

type ConvertRequest struct {
	Amount string `json:"amount" validate:"required,max=64,amount"`
}

type BatchRequest struct {
	Amounts []string `json:"amounts" validate:"required,min=1"`
}

// ConvertResponse is the data of a successful conversion.
type ConvertResponse struct {
	Amount   string `json:"amount"`
	AmountNP string `json:"amount_np"`
	Words    string `json:"words"`
}

// BatchItem is one entry of a batch response. Exactly one of Result and Error is set.
type BatchItem struct {
	Input  string                 `json:"input"`
	Result *ConvertResponse       `json:"result,omitempty"`
	Error  *wscutils.ErrorMessage `json:"error,omitempty"`
}

type BatchResponse struct {
	Items []BatchItem `json:"items"`
}

//-----------------------------------------------------------------------------
// Registration
//-----------------------------------------------------------------------------

// RegisterHandlers sets up the error mappings and registers the conversion routes on s.
func RegisterHandlers(s *service.Service) error {
	if err := validations.RegisterAmountValidation(); err != nil {
		return fmt.Errorf("registering amount validation: %w", err)
	}

	wscutils.SetValidationTagToErrCodeMap(map[string]string{
		"required":            ErrCodeRequired,
		"min":                 ErrCodeRequired,
		"max":                 ErrCodeTooLong,
		validations.TagAmount: ErrCodeInvalidAmount,
	})
	wscutils.SetValidationTagToMsgIDMap(map[string]int{
		"required":            ErrMsgIDRequired,
		"min":                 ErrMsgIDRequired,
		"max":                 ErrMsgIDTooLong,
		validations.TagAmount: ErrMsgIDInvalidAmount,
	})
	wscutils.SetDefaultErrCode(ErrCodeInvalidAmount)
	wscutils.SetDefaultMsgID(ErrMsgIDInvalidAmount)

	metrics.RegisterConversionMetrics(s.Metrics)

	g := s.CreateGroup("/nepaliword")
	routes := []struct {
		method  string
		path    string
		handler service.HandlerFunc
	}{
		{http.MethodPost, "/convert", HandleConvertRequest},
		{http.MethodGet, "/convert/:amount", HandleConvertPathRequest},
		{http.MethodPost, "/convert/batch", HandleBatchRequest},
	}
	for _, r := range routes {
		if err := g.RegisterRoute(r.method, r.path, r.handler); err != nil {
			return err
		}
	}
	return s.RegisterRoute(http.MethodGet, "/healthz", HandleHealthRequest)
}

//-----------------------------------------------------------------------------
// Request Handlers
//-----------------------------------------------------------------------------

// HandleConvertRequest handles POST /nepaliword/convert.
func HandleConvertRequest(c *gin.Context, s *service.Service) {
	var req ConvertRequest
	if err := wscutils.BindJSON(c, &req); err != nil {
		logger(s).Warn().LogActivity("invalid convert request", map[string]any{"error": err.Error()})
		return
	}
	respond(c, s, req)
}

// HandleConvertPathRequest handles GET /nepaliword/convert/:amount.
func HandleConvertPathRequest(c *gin.Context, s *service.Service) {
	respond(c, s, ConvertRequest{Amount: c.Param("amount")})
}

func respond(c *gin.Context, s *service.Service, req ConvertRequest) {
	if validationErrors := validate(req); len(validationErrors) > 0 {
		wscutils.SendErrorResponse(c, wscutils.NewResponse(wscutils.ErrorStatus, nil, validationErrors))
		return
	}

	result, err := convertAmount(c.Request.Context(), s, req.Amount)
	if err != nil {
		// validate accepted the amount, so only a context error is expected here.
		sendTimeout(c)
		return
	}
	wscutils.SendSuccessResponse(c, wscutils.NewSuccessResponse(result))
}

// HandleBatchRequest handles POST /nepaliword/convert/batch. Amounts are converted
// concurrently; items keep the order of the request and carry their own errors.
func HandleBatchRequest(c *gin.Context, s *service.Service) {
	var req BatchRequest
	if err := wscutils.BindJSON(c, &req); err != nil {
		logger(s).Warn().LogActivity("invalid batch request", map[string]any{"error": err.Error()})
		return
	}

	validationErrors := wscutils.WscValidate(req, func(err validator.FieldError) []string {
		return []string{}
	})
	for i := range validationErrors {
		validationErrors[i].Field = FieldAmounts
	}
	if maxBatch := s.AppConfig.MaxBatchSize; len(validationErrors) == 0 && len(req.Amounts) > maxBatch {
		validationErrors = append(validationErrors, wscutils.BuildErrorMessage(ErrMsgIDTooMany, ErrCodeTooMany, FieldAmounts,
			strconv.Itoa(len(req.Amounts)), strconv.Itoa(maxBatch)))
	}
	if len(validationErrors) > 0 {
		wscutils.SendErrorResponse(c, wscutils.NewResponse(wscutils.ErrorStatus, nil, validationErrors))
		return
	}

	ctx := c.Request.Context()
	items := make([]BatchItem, len(req.Amounts))

	var g errgroup.Group
	g.SetLimit(batchWorkers)
	for i, amount := range req.Amounts {
		i, amount := i, amount
		g.Go(func() error {
			items[i] = convertItem(ctx, s, amount)
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil {
		sendTimeout(c)
		return
	}
	wscutils.SendSuccessResponse(c, wscutils.NewSuccessResponse(BatchResponse{Items: items}))
}

// HandleHealthRequest handles GET /healthz.
func HandleHealthRequest(c *gin.Context, s *service.Service) {
	wscutils.SendSuccessResponse(c, wscutils.NewSuccessResponse(map[string]string{"status": "ok"}))
}

func sendTimeout(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, wscutils.NewErrorResponse(ErrMsgIDTimeout, ErrCodeTimeout))
}

//-----------------------------------------------------------------------------
// Validation
//-----------------------------------------------------------------------------

// validate runs the struct validation and then tells apart amounts that are
// malformed from amounts that are too large.
func validate(req ConvertRequest) []wscutils.ErrorMessage {
	validationErrors := wscutils.WscValidate(req, func(err validator.FieldError) []string {
		switch err.Tag() {
		case "max":
			return []string{strconv.Itoa(len(req.Amount)), err.Param()}
		case validations.TagAmount:
			return []string{req.Amount}
		default:
			return []string{}
		}
	})

	// NOTE: it mutates validationErrors
	for i, e := range validationErrors {
		validationErrors[i].Field = FieldAmount
		if e.ErrCode == ErrCodeInvalidAmount && validations.IsUnsupportedMagnitude(req.Amount) {
			validationErrors[i].MsgID = ErrMsgIDUnsupportedMagnitude
			validationErrors[i].ErrCode = ErrCodeUnsupportedMagnitude
		}
	}
	return validationErrors
}

// itemError maps a conversion error to the error of a batch item.
func itemError(amount string, err error) *wscutils.ErrorMessage {
	var msg wscutils.ErrorMessage
	switch {
	case errors.Is(err, nepaliword.ErrUnsupportedMagnitude):
		msg = wscutils.BuildErrorMessage(ErrMsgIDUnsupportedMagnitude, ErrCodeUnsupportedMagnitude, FieldAmount, amount)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		msg = wscutils.BuildErrorMessage(ErrMsgIDTimeout, ErrCodeTimeout, FieldAmount)
	default:
		msg = wscutils.BuildErrorMessage(ErrMsgIDInvalidAmount, ErrCodeInvalidAmount, FieldAmount, amount)
	}
	return &msg
}

func convertItem(ctx context.Context, s *service.Service, amount string) BatchItem {
	result, err := convertAmount(ctx, s, amount)
	if err != nil {
		return BatchItem{Input: amount, Error: itemError(amount, err)}
	}
	return BatchItem{Input: amount, Result: result}
}

//-----------------------------------------------------------------------------
// Conversion
//-----------------------------------------------------------------------------

// convertAmount parses text, then answers from the cache or converts and stores the result.
// Cache failures are logged and the amount is converted anyway.
func convertAmount(ctx context.Context, s *service.Service, text string) (*ConvertResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	defer func() {
		s.Metrics.Record(metrics.ConversionDuration, time.Since(start).Seconds())
	}()

	d, err := validations.ParseAmount(text)
	if err != nil {
		s.Metrics.RecordWithLabels(metrics.ConversionsTotal, 1, outcome(err))
		return nil, err
	}
	a, err := nepaliword.Split(d)
	if err != nil {
		s.Metrics.RecordWithLabels(metrics.ConversionsTotal, 1, outcome(err))
		return nil, err
	}

	key := cache.Key(a, s.AppConfig.LegacySpacing)
	words, ok, err := s.Cache.Get(ctx, key)
	switch {
	case err != nil:
		s.Metrics.RecordWithLabels(metrics.CacheLookupsTotal, 1, metrics.CacheError)
		logger(s).Error(err).LogActivity("cache lookup failed", map[string]any{"key": key})
	case ok:
		s.Metrics.RecordWithLabels(metrics.CacheLookupsTotal, 1, metrics.CacheHit)
	default:
		s.Metrics.RecordWithLabels(metrics.CacheLookupsTotal, 1, metrics.CacheMiss)
	}

	if !ok {
		words, err = s.Converter.Convert(d)
		if err != nil {
			s.Metrics.RecordWithLabels(metrics.ConversionsTotal, 1, outcome(err))
			return nil, err
		}
		if err := s.Cache.Set(ctx, key, words); err != nil {
			logger(s).Error(err).LogActivity("cache store failed", map[string]any{"key": key})
		}
	}

	s.Metrics.RecordWithLabels(metrics.ConversionsTotal, 1, metrics.OutcomeSuccess)
	return newConvertResponse(d, words), nil
}

func newConvertResponse(d decimal.Decimal, words string) *ConvertResponse {
	amount := d.String()
	return &ConvertResponse{
		Amount:   amount,
		AmountNP: nepaliword.Digits(amount),
		Words:    words,
	}
}

func outcome(err error) string {
	if errors.Is(err, nepaliword.ErrUnsupportedMagnitude) {
		return metrics.OutcomeMagnitude
	}
	return metrics.OutcomeInvalid
}

var discard = logharbour.NewLogger(logharbour.NewLoggerContext(logharbour.DefaultPriority), "nepaliword", io.Discard)

// logger returns the service logger with the module set, or a discarding logger when none is configured.
func logger(s *service.Service) *logharbour.Logger {
	if s.Logger == nil {
		return discard.WithModule("convert")
	}
	return s.Logger.WithModule("convert")
}
