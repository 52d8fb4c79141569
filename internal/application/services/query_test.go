package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application/services/testhelpers"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/infrastructure/persistence/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type QueryServiceTestSuite struct {
	suite.Suite
	testDB       *testhelpers.TestDatabase
	attemptRepo  *postgres.AttemptRepository
	checkoutRepo *postgres.CheckoutRepository
	queryService *services.QueryService
}

func TestQueryServiceSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database suite in short mode")
	}
	suite.Run(t, new(QueryServiceTestSuite))
}

func (suite *QueryServiceTestSuite) SetupSuite() {
	suite.testDB = testhelpers.SetupTestDatabase(suite.T())
	suite.attemptRepo = postgres.NewAttemptRepository(suite.testDB.DB)
	suite.checkoutRepo = postgres.NewCheckoutRepository(suite.testDB.DB)
	suite.queryService = services.NewQueryService(suite.attemptRepo, suite.checkoutRepo)
}

func (suite *QueryServiceTestSuite) TearDownSuite() {
	suite.testDB.Cleanup(suite.T())
}

// TearDownTest runs after each test
func (suite *QueryServiceTestSuite) TearDownTest() {
	suite.testDB.CleanTables(suite.T())
}

func (suite *QueryServiceTestSuite) Test_FindAttempt_Settled() {
	ctx := context.Background()
	t := suite.T()

	attempt := testhelpers.CreateAttempt(t, ctx, suite.attemptRepo, "tok-1", time.Minute)
	require.NoError(t, attempt.MarkAuthenticating("acs.bank.test", time.Now()))
	require.NoError(t, attempt.Succeed(testhelpers.ApprovedReceipt(), time.Now()))
	require.NoError(t, suite.attemptRepo.Update(ctx, attempt))

	found, err := suite.queryService.FindAttempt(ctx, attempt.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.AttemptSucceeded, found.Status)
	assert.Equal(t, "card", found.PaymentSystem)
	require.NotNil(t, found.ChallengeHost)
	assert.Equal(t, "acs.bank.test", *found.ChallengeHost)
	assert.NotNil(t, found.CompletedAt)
	assert.Equal(t, testhelpers.ApprovedReceipt(), found.Receipt)
}

func (suite *QueryServiceTestSuite) Test_FindAttempt_NotFound() {
	t := suite.T()

	_, err := suite.queryService.FindAttempt(context.Background(), "00000000-0000-0000-0000-000000000000")

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeNotFound, svcErr.Code)
	assert.ErrorIs(t, err, domain.ErrAttemptNotFound)
}

func (suite *QueryServiceTestSuite) Test_FindCheckout() {
	ctx := context.Background()
	t := suite.T()

	checkout := testhelpers.CreateCheckout(t, ctx, suite.checkoutRepo, "tok-1")

	found, err := suite.queryService.FindCheckout(ctx, checkout.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", found.Token)
	assert.Equal(t, domain.OrderStatusCreated, found.OrderStatus)

	_, err = suite.queryService.FindCheckout(ctx, "order-missing")
	assert.ErrorIs(t, err, domain.ErrCheckoutNotFound)
}
