package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/config"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/go-resty/resty/v2"
)

// HTTPGatewayClient talks to the gateway's JSON checkout API. It never
// retries; callers decide what to do with a failure.
type HTTPGatewayClient struct {
	host           string
	merchantID     int64
	secretKey      string
	callbackOrigin string
	rest           *resty.Client
	logger         *slog.Logger
}

func NewGatewayClient(cfg config.GatewayConfig, logger *slog.Logger) *HTTPGatewayClient {
	host := strings.TrimRight(cfg.Host, "/")

	rest := resty.New().
		SetBaseURL(host).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetLogger(&restyLogger{logger: logger})

	return &HTTPGatewayClient{
		host:           host,
		merchantID:     cfg.MerchantID,
		secretKey:      cfg.SecretKey,
		callbackOrigin: cfg.CallbackOrigin,
		rest:           rest,
		logger:         logger,
	}
}

func (c *HTTPGatewayClient) Host() string {
	return c.host
}

// FetchConfig asks the gateway how the wallet should be invoked for token.
func (c *HTTPGatewayClient) FetchConfig(ctx context.Context, token string) (*domain.GatewayConfig, error) {
	resp, err := sendRequest[MobilePayResponse](c, ctx, pathMobilePay, MobilePayRequest{
		MerchantID: c.merchantID,
		Token:      token,
	})
	if err != nil {
		return nil, err
	}

	if resp.ErrorMessage != "" {
		return nil, &APIError{Code: CodeUnknown, Message: resp.ErrorMessage, StatusCode: http.StatusOK}
	}

	for _, method := range resp.Methods {
		if method.SupportedMethods == googlePayMethod && len(method.Data) > 0 {
			return &domain.GatewayConfig{
				PaymentSystem:  resp.PaymentSystem,
				WalletRequest:  method.Data,
				Token:          token,
				CallbackOrigin: c.callbackOrigin,
			}, nil
		}
	}

	return nil, &APIError{
		Code:       CodeWalletNotSupported,
		Message:    "Google Pay not supported for this merchant",
		StatusCode: http.StatusOK,
	}
}

// SubmitPayment hands the wallet's payment data to the gateway. When the
// gateway redirects straight to the callback origin the order is complete and
// its receipt is fetched; otherwise the issuer's authentication page is
// fetched and returned as a challenge.
func (c *HTTPGatewayClient) SubmitPayment(ctx context.Context, call domain.GatewayCall, paymentData json.RawMessage, email string) (*domain.Submission, error) {
	if !json.Valid(paymentData) {
		return nil, domain.NewValidationError("data", "payment data is not valid JSON")
	}

	resp, err := sendRequest[CheckoutResponse](c, ctx, pathCheckout, CheckoutRequest{
		PaymentSystem: call.PaymentSystem,
		Token:         call.Token,
		Data:          paymentData,
		Email:         email,
	})
	if err != nil {
		return nil, err
	}

	if resp.URL == "" {
		return nil, newMalformedError(http.StatusOK, "checkout response has no url")
	}

	if strings.HasPrefix(resp.URL, call.CallbackOrigin) {
		c.logger.Debug("no step-up authentication required", "token", call.Token)
		receipt, err := c.GetOrder(ctx, call.Token)
		if err != nil {
			return nil, err
		}
		return &domain.Submission{Receipt: receipt}, nil
	}

	if resp.SendData == nil {
		return nil, newMalformedError(http.StatusOK, "checkout response has no send_data")
	}

	challenge, err := c.fetchChallenge(ctx, resp.URL, *resp.SendData)
	if err != nil {
		return nil, err
	}
	challenge.CallbackOrigin = call.CallbackOrigin
	return &domain.Submission{Challenge: challenge}, nil
}

func (c *HTTPGatewayClient) fetchChallenge(ctx context.Context, target string, form SendData) (*domain.Challenge, error) {
	c.logger.Info("step-up authentication required", "url", target)

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html").
		SetFormData(map[string]string{
			"MD":      form.MD,
			"PaReq":   form.PaReq,
			"TermUrl": form.TermURL,
		}).
		Post(target)
	if err != nil {
		return nil, fmt.Errorf("error fetching authentication page: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, &APIError{
			Code:       CodeChallengeUnavailable,
			Message:    "authentication page returned " + resp.Status(),
			StatusCode: resp.StatusCode(),
		}
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "text/html"
	}

	return &domain.Challenge{
		HTML:        string(resp.Body()),
		ContentType: contentType,
		URL:         target,
		GatewayHost: c.host,
		Cookie:      strings.Join(resp.Header().Values("Set-Cookie"), "; "),
	}, nil
}

// GetOrder looks up the order behind token and returns its receipt.
func (c *HTTPGatewayClient) GetOrder(ctx context.Context, token string) (*domain.Receipt, error) {
	resp, err := sendRequest[OrderResponse](c, ctx, pathOrder, OrderRequest{Token: token})
	if err != nil {
		return nil, err
	}

	params, err := decodeOrderData(resp.OrderData)
	if err != nil {
		return nil, err
	}

	receipt, err := domain.ReceiptFromParams(params, resp.ResponseURL)
	if err != nil {
		return nil, newMalformedError(http.StatusOK, err.Error())
	}
	return receipt, nil
}

// CreateOrderToken registers order with the gateway and returns the checkout
// token the wallet flow starts from. The order is frozen afterwards.
func (c *HTTPGatewayClient) CreateOrderToken(ctx context.Context, order *domain.Order) (string, error) {
	params := order.Params()
	params["merchant_id"] = strconv.FormatInt(c.merchantID, 10)
	params["signature"] = c.Sign(params)

	order.MarkSubmitted()

	resp, err := sendRequest[TokenResponse](c, ctx, pathToken, params)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", newMalformedError(http.StatusOK, "token response has no token")
	}
	return resp.Token, nil
}

// order_data arrives either as an object or as a JSON document in a string.
func decodeOrderData(raw json.RawMessage) (map[string]any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, newMalformedError(http.StatusOK, "order response has no order_data")
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, newMalformedError(http.StatusOK, "order_data is not a JSON string")
		}
		raw = []byte(inner)
	}

	var params map[string]any
	if err := decodeJSON(raw, &params); err != nil || params == nil {
		return nil, newMalformedError(http.StatusOK, "order_data is not a JSON object")
	}
	return params, nil
}

func sendRequest[Resp any](c *HTTPGatewayClient, ctx context.Context, path string, reqBody any) (*Resp, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(envelope{Request: reqBody}).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}

	return unwrapResponse[Resp](resp.Body(), resp.StatusCode())
}

// unwrapResponse opens the {"response": {...}} envelope and turns a
// non-success response_status into an APIError.
func unwrapResponse[Resp any](body []byte, statusCode int) (*Resp, error) {
	var env struct {
		Response json.RawMessage `json:"response"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, newMalformedError(statusCode, "body is not JSON")
	}

	inner := bytes.TrimSpace(env.Response)
	if len(inner) == 0 || inner[0] != '{' {
		return nil, newMalformedError(statusCode, "missing response object")
	}

	var status statusFields
	if err := decodeJSON(inner, &status); err != nil {
		return nil, newMalformedError(statusCode, err.Error())
	}

	if status.ResponseStatus != "" && status.ResponseStatus != statusSuccess {
		message := status.ErrorMessage
		if message == "" {
			message = defaultErrorText
		}
		code := CodeUnknown
		if status.ErrorCode != nil {
			code = fmt.Sprint(status.ErrorCode)
		}
		return nil, &APIError{Code: code, Message: message, StatusCode: statusCode}
	}

	var out Resp
	if err := decodeJSON(inner, &out); err != nil {
		return nil, newMalformedError(statusCode, err.Error())
	}
	return &out, nil
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

type restyLogger struct {
	logger *slog.Logger
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...), "component", "gateway_http")
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...), "component", "gateway_http")
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...), "component", "gateway_http")
}
