package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/adapters/remote"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/api"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application/mocks"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/infrastructure/gateway"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/interfaces/rest/handlers"
)

const unknownAttemptID = "6f1c2a0e-7c3b-4b7e-9d2a-0a1b2c3d4e5f"

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type HandlersTestSuite struct {
	suite.Suite
	gateway      *mocks.MockGateway
	orderGateway *mocks.MockOrderGateway
	attempts     *mocks.AttemptRepository
	checkouts    *mocks.CheckoutRepository
	payments     *services.PaymentService
	db           *pinger
	mux          *http.ServeMux
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	suite.gateway = mocks.NewMockGateway(suite.T())
	suite.orderGateway = mocks.NewMockOrderGateway(suite.T())
	suite.attempts = mocks.NewAttemptRepository()
	suite.checkouts = mocks.NewCheckoutRepository()
	suite.db = &pinger{}

	suite.payments = services.NewPaymentService(
		suite.gateway,
		suite.attempts,
		remote.NewRegistry(),
		services.PaymentServiceConfig{AuthTimeout: 5 * time.Second, AttemptTimeout: 10 * time.Second},
		logger,
	)

	h := handlers.NewHandlers(
		services.NewOrderService(suite.orderGateway, suite.checkouts, logger),
		suite.payments,
		services.NewCallbackService(suite.orderGateway, suite.checkouts, suite.attempts, logger),
		services.NewQueryService(suite.attempts, suite.checkouts),
		suite.db,
		logger,
	)
	suite.mux = http.NewServeMux()
	h.Register(suite.mux)
}

func (suite *HandlersTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	suite.Require().NoError(suite.payments.Shutdown(ctx))
}

func (suite *HandlersTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	suite.mux.ServeHTTP(rec, req)
	return rec
}

func (suite *HandlersTestSuite) decode(rec *httptest.ResponseRecorder, dst any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func (suite *HandlersTestSuite) assertError(rec *httptest.ResponseRecorder, status int, code string) {
	suite.Equal(status, rec.Code, rec.Body.String())
	var body api.ErrorResponse
	suite.decode(rec, &body)
	suite.False(body.Success)
	suite.Equal(code, body.Error.Code)
}

func (suite *HandlersTestSuite) seedCheckout(token, orderID string) {
	suite.Require().NoError(suite.checkouts.Create(context.Background(), &domain.Checkout{
		Token:       token,
		OrderID:     orderID,
		Amount:      1000,
		Currency:    "UAH",
		OrderStatus: domain.OrderStatusCreated,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}))
}

// ============================================================================
// Orders and callbacks
// ============================================================================

func (suite *HandlersTestSuite) Test_CreateOrder() {
	suite.orderGateway.EXPECT().
		CreateOrderToken(mock.Anything, mock.Anything).
		Return("tok-1", nil).
		Once()

	rec := suite.do(http.MethodPost, "/v1/orders",
		`{"amount":1000,"currency":"uah","order_id":"order-1","order_desc":"Mug"}`)

	suite.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var body api.CheckoutResponse
	suite.decode(rec, &body)
	suite.True(body.Success)
	suite.Equal("tok-1", body.Data.Token)
	suite.Equal("UAH", body.Data.Currency)
	suite.Equal(domain.OrderStatusCreated, body.Data.OrderStatus)
}

func (suite *HandlersTestSuite) Test_CreateOrder_MalformedBody() {
	rec := suite.do(http.MethodPost, "/v1/orders", `{"amount":`)
	suite.assertError(rec, http.StatusBadRequest, "INVALID_INPUT")

	rec = suite.do(http.MethodPost, "/v1/orders", `{"amount":1,"surprise":true}`)
	suite.assertError(rec, http.StatusBadRequest, "INVALID_INPUT")
}

func (suite *HandlersTestSuite) Test_CreateOrder_GatewayRejects() {
	suite.orderGateway.EXPECT().
		CreateOrderToken(mock.Anything, mock.Anything).
		Return("", &gateway.APIError{Code: "1011", Message: "Parameter amount is incorrect"}).
		Once()

	rec := suite.do(http.MethodPost, "/v1/orders",
		`{"amount":1000,"currency":"UAH","order_id":"order-1","order_desc":"Mug"}`)

	suite.assertError(rec, http.StatusBadGateway, "GATEWAY_ERROR")
}

func (suite *HandlersTestSuite) Test_GatewayCallback_Approved() {
	suite.seedCheckout("tok-1", "order-1")
	attempt, err := domain.NewAttempt("a-1", "tok-1")
	suite.Require().NoError(err)
	suite.attempts.Put(attempt)

	suite.orderGateway.EXPECT().
		VerifySignature(mock.MatchedBy(func(params map[string]string) bool {
			return params["payment_id"] == "42" && params["amount"] == "1000"
		})).
		Return(true).
		Once()

	rec := suite.do(http.MethodPost, "/v1/callbacks/gateway",
		`{"order_id":"order-1","order_status":"approved","payment_id":42,"amount":1000,"currency":"UAH","signature":"abc"}`)

	suite.Equal(http.StatusOK, rec.Code, rec.Body.String())
	var body api.CheckoutResponse
	suite.decode(rec, &body)
	suite.Equal(domain.OrderStatusApproved, body.Data.OrderStatus)

	settled, err := suite.attempts.FindByID(context.Background(), "a-1")
	suite.Require().NoError(err)
	suite.Equal(domain.AttemptSucceeded, settled.Status)
}

func (suite *HandlersTestSuite) Test_GatewayCallback_BadSignature() {
	suite.orderGateway.EXPECT().VerifySignature(mock.Anything).Return(false).Once()

	rec := suite.do(http.MethodPost, "/v1/callbacks/gateway",
		`{"order_id":"order-1","order_status":"approved","signature":"forged"}`)

	suite.assertError(rec, http.StatusUnauthorized, "INVALID_SIGNATURE")
}

// ============================================================================
// Remote payments
// ============================================================================

func (suite *HandlersTestSuite) Test_Payment_DirectReceipt() {
	suite.gateway.EXPECT().
		FetchConfig(mock.Anything, "tok-1").
		Return(&domain.GatewayConfig{
			PaymentSystem: "card",
			WalletRequest: json.RawMessage(`{"environment":"TEST"}`),
			Token:         "tok-1",
		}, nil).
		Once()
	suite.gateway.EXPECT().
		SubmitPayment(mock.Anything, mock.Anything, mock.Anything, "buyer@example.com").
		Return(&domain.Submission{Receipt: &domain.Receipt{PaymentID: 7, OrderStatus: domain.OrderStatusApproved}}, nil).
		Once()

	rec := suite.do(http.MethodPost, "/v1/payments", `{"token":"tok-1"}`)
	suite.Require().Equal(http.StatusAccepted, rec.Code, rec.Body.String())
	var started api.PaymentResponse
	suite.decode(rec, &started)
	id := started.Data.AttemptID
	suite.Require().NotEmpty(id)

	suite.Require().Eventually(func() bool {
		var view api.PaymentResponse
		suite.decode(suite.do(http.MethodGet, "/v1/payments/"+id, ""), &view)
		return view.Data.Stage == string(remote.StageWallet) && view.Data.WalletRequest != nil
	}, 2*time.Second, 5*time.Millisecond)

	rec = suite.do(http.MethodPost, "/v1/payments/"+id+"/wallet",
		`{"status":"completed","payment_data":{"paymentMethodData":{}},"email":"buyer@example.com"}`)
	suite.Equal(http.StatusAccepted, rec.Code, rec.Body.String())

	var done api.PaymentResponse
	suite.Require().Eventually(func() bool {
		suite.decode(suite.do(http.MethodGet, "/v1/payments/"+id, ""), &done)
		return done.Data.Stage == string(remote.StageDone)
	}, 2*time.Second, 5*time.Millisecond)
	suite.Require().NotNil(done.Data.Outcome)
	suite.True(done.Data.Outcome.Success)
	suite.Equal(int64(7), done.Data.Outcome.Receipt.PaymentID)

	rec = suite.do(http.MethodGet, "/v1/attempts/"+id, "")
	suite.Equal(http.StatusOK, rec.Code, rec.Body.String())
	var attempt api.AttemptResponse
	suite.decode(rec, &attempt)
	suite.Equal(string(domain.AttemptSucceeded), attempt.Data.Status)
	suite.Equal("card", attempt.Data.PaymentSystem)
}

func (suite *HandlersTestSuite) Test_Payment_TokenRequired() {
	rec := suite.do(http.MethodPost, "/v1/payments", `{"token":"  "}`)
	suite.assertError(rec, http.StatusBadRequest, "INVALID_INPUT")
}

func (suite *HandlersTestSuite) Test_Payment_InvalidAttemptID() {
	rec := suite.do(http.MethodGet, "/v1/payments/not-a-uuid", "")
	suite.assertError(rec, http.StatusBadRequest, "INVALID_INPUT")
}

func (suite *HandlersTestSuite) Test_Payment_UnknownAttempt() {
	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/v1/payments/" + unknownAttemptID, ""},
		{http.MethodPost, "/v1/payments/" + unknownAttemptID + "/wallet", `{"status":"cancelled"}`},
		{http.MethodPost, "/v1/payments/" + unknownAttemptID + "/navigation", `{"url":"https://acs.example","phase":"navigating"}`},
		{http.MethodPost, "/v1/payments/" + unknownAttemptID + "/cancel", ""},
		{http.MethodGet, "/v1/attempts/" + unknownAttemptID, ""},
	}

	for _, tt := range tests {
		rec := suite.do(tt.method, tt.path, tt.body)
		suite.assertError(rec, http.StatusNotFound, "NOT_FOUND")
	}
}

// ============================================================================
// Queries and health
// ============================================================================

func (suite *HandlersTestSuite) Test_GetCheckout() {
	suite.seedCheckout("tok-9", "order-9")

	rec := suite.do(http.MethodGet, "/v1/checkouts/order-9", "")
	suite.Equal(http.StatusOK, rec.Code, rec.Body.String())
	var body api.CheckoutResponse
	suite.decode(rec, &body)
	suite.Equal("tok-9", body.Data.Token)

	rec = suite.do(http.MethodGet, "/v1/checkouts/missing", "")
	suite.assertError(rec, http.StatusNotFound, "NOT_FOUND")
}

func (suite *HandlersTestSuite) Test_Health() {
	rec := suite.do(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, rec.Code)

	suite.db.err = errors.New("connection refused")
	rec = suite.do(http.MethodGet, "/health", "")
	suite.assertError(rec, http.StatusServiceUnavailable, "UNAVAILABLE")
}
