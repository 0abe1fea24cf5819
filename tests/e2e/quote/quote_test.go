//go:build e2e

package quote_test

import (
	"context"
	"testing"
	"time"

	"interpreting-payments/internal/domain/payment"
	"interpreting-payments/internal/domain/pricing"
	"interpreting-payments/internal/infra/repository"
	"interpreting-payments/internal/pkg/errs"
	"interpreting-payments/internal/usecase"
	"interpreting-payments/tests/common/builder"
	"interpreting-payments/tests/e2e"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type QuoteSuite struct {
	e2e.SharedSuite
}

func TestQuoteSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(QuoteSuite))
}

func (s *QuoteSuite) seedRateCard(ctx context.Context) {
	repo := repository.NewRateRepository(s.DB, s.Logger)
	require.NoError(s.T(), repo.InsertVersion(ctx, 1, builder.NewRateCardBuilder().BuildRows()))
}

func (s *QuoteSuite) TestQuote() {
	ctx := context.Background()

	s.Run("Normal case: single block in normal hours", func() {
		t := s.T()
		s.seedRateCard(ctx)

		rm, err := s.Quotes.Quote(ctx, builder.NewPricingConfigBuilder().BuildRequest(pricing.CalculationTypePreliminaryEstimate))

		require.NoError(t, err)
		require.True(t, decimal.RequireFromString("66").Equal(rm.ClientFullAmount), "client full amount %s", rm.ClientFullAmount)
		require.True(t, decimal.RequireFromString("55").Equal(rm.InterpreterFullAmount), "interpreter full amount %s", rm.InterpreterFullAmount)
		require.Equal(t, "normal", rm.Scenario)
	})

	s.Run("Normal case: appointment crossing the end of normal hours", func() {
		t := s.T()
		s.seedRateCard(ctx)

		req := builder.NewPricingConfigBuilder().With(func(c *pricing.Config) {
			c.ScheduleDateTime = builder.At(16, 30)
			c.Duration = 60
		}).BuildRequest(pricing.CalculationTypeDetailedBreakdown)
		rm, err := s.Quotes.Quote(ctx, req)

		require.NoError(t, err)
		require.Equal(t, "cross-boundary", rm.Scenario)
		require.True(t, rm.RequiresCrossRateLogic)
		require.True(t, decimal.RequireFromString("165").Equal(rm.ClientFullAmount), "client full amount %s", rm.ClientFullAmount)
		require.NotEmpty(t, rm.AuditSteps)
	})

	s.Run("Normal case: quoted price feeds the authorization decision", func() {
		t := s.T()
		s.seedRateCard(ctx)

		rm, err := s.Quotes.Quote(ctx, builder.NewPricingConfigBuilder().BuildRequest(pricing.CalculationTypeAppointmentStartPrice))
		require.NoError(t, err)

		b := builder.NewPaymentContextBuilder()
		b.Prices.ClientFullAmount = rm.ClientFullAmount
		b.AppointmentIn(10 * 24 * time.Hour)
		op := s.Payments.Authorization(ctx, b.BuildAuthorization())

		require.Equal(t, payment.OperationAuthorization, op.Kind())
		require.Equal(t, payment.AuthorizationStrategyWaitListRedirect.String(), op.StrategyName())
	})

	s.Run("Abnormal case: no rate card loaded", func() {
		t := s.T()

		_, err := s.Quotes.Quote(ctx, builder.NewPricingConfigBuilder().BuildRequest(pricing.CalculationTypePreliminaryEstimate))

		require.Error(t, err)
		require.True(t, errs.Is(err, usecase.ErrRateCardNotFound), "expected no active rate card, got %v", err)
	})
}
