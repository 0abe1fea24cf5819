//go:build unit

package discount_test

import (
	"testing"

	"interpreting-payments/internal/domain/discount"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amounts(amount, gst string) discount.Amounts {
	a := decimal.RequireFromString(amount)
	g := decimal.RequireFromString(gst)
	return discount.Amounts{Amount: a, GST: g, Full: a.Add(g)}
}

func membership(freeMinutes int, percentage int64) discount.Assignment {
	return discount.Assignment{Kind: discount.KindMembership, Code: "gold", FreeMinutes: freeMinutes, Percentage: decimal.NewFromInt(percentage)}
}

func promoPercentage(percentage int64) discount.Assignment {
	return discount.Assignment{Kind: discount.KindPromo, Code: "WELCOME", Percentage: decimal.NewFromInt(percentage)}
}

func promoMinutes(freeMinutes int) discount.Assignment {
	return discount.Assignment{Kind: discount.KindPromo, Code: "FREEMIN", FreeMinutes: freeMinutes}
}

func newRate(t *testing.T, assignments ...discount.Assignment) discount.Rate {
	t.Helper()
	r, err := discount.NewRate(assignments)
	require.NoError(t, err)
	return r
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func TestProcessor_Apply(t *testing.T) {
	p := discount.NewProcessor()

	t.Run("membership free minutes covering the booking clip to zero", func(t *testing.T) {
		out, err := p.Apply(amounts("80", "8"), 40, newRate(t, membership(50, 10)))
		require.NoError(t, err)

		assertDecimal(t, "0", out.Amounts.Amount)
		assertDecimal(t, "0", out.Amounts.GST)
		assertDecimal(t, "0", out.Amounts.Full)
		assertDecimal(t, "80", out.Summary.ByMembershipMinutes)
		assertDecimal(t, "0", out.Summary.ByMembershipPercentage)
		assertDecimal(t, "80", out.Summary.Total)

		clips := out.Summary.Clips()
		require.Len(t, clips, 1)
		assert.Equal(t, discount.MethodFreeMinutes, clips[0].Method)
		assert.Equal(t, 50, clips[0].Minutes)
		assertDecimal(t, "100", clips[0].Requested)
		assertDecimal(t, "80", clips[0].Applied)
	})

	t.Run("steps apply in fixed order to the remaining amount", func(t *testing.T) {
		out, err := p.Apply(amounts("120", "12"), 60, newRate(t, promoPercentage(20), membership(15, 10)))
		require.NoError(t, err)

		require.Len(t, out.Summary.Applied, 3)
		assert.Equal(t, discount.MethodFreeMinutes, out.Summary.Applied[0].Method)
		assert.Equal(t, discount.MethodPercentage, out.Summary.Applied[1].Method)
		assert.Equal(t, discount.KindPromo, out.Summary.Applied[2].Kind)

		assertDecimal(t, "30", out.Summary.ByMembershipMinutes)
		assertDecimal(t, "9", out.Summary.ByMembershipPercentage)
		assertDecimal(t, "16.2", out.Summary.ByPromoCode)
		assertDecimal(t, "55.2", out.Summary.Total)
		assertDecimal(t, "64.8", out.Amounts.Amount)
		assertDecimal(t, "6.48", out.Amounts.GST)
		assertDecimal(t, "71.28", out.Amounts.Full)
		assert.Empty(t, out.Summary.Clips())
	})

	t.Run("promo free minutes", func(t *testing.T) {
		out, err := p.Apply(amounts("120", "12"), 60, newRate(t, promoMinutes(30)))
		require.NoError(t, err)

		assertDecimal(t, "60", out.Amounts.Amount)
		assertDecimal(t, "60", out.Summary.ByPromoCode)
		assertDecimal(t, "6", out.Amounts.GST)
	})

	t.Run("no discounts leaves amounts untouched", func(t *testing.T) {
		in := amounts("120", "12")
		out, err := p.Apply(in, 60, discount.Rate{})
		require.NoError(t, err)

		assert.Equal(t, in, out.Amounts)
		assert.Empty(t, out.Summary.Applied)
	})

	t.Run("non-positive duration with discounts", func(t *testing.T) {
		_, err := p.Apply(amounts("120", "12"), 0, newRate(t, membership(10, 0)))
		assert.ErrorIs(t, err, discount.ErrInvalidDuration)
	})
}

func TestProcessor_Apply_NeverNegative(t *testing.T) {
	p := discount.NewProcessor()
	promos := []*discount.Assignment{nil}
	for _, a := range []discount.Assignment{promoPercentage(100), promoPercentage(35), promoMinutes(500)} {
		promos = append(promos, &a)
	}

	for _, minutes := range []int{0, 10, 60, 200} {
		for _, pct := range []int64{0, 50, 100} {
			for _, promo := range promos {
				assignments := []discount.Assignment{membership(minutes, pct)}
				if promo != nil {
					assignments = append(assignments, *promo)
				}
				out, err := p.Apply(amounts("75.5", "7.55"), 45, newRate(t, assignments...))
				require.NoError(t, err)

				assert.False(t, out.Amounts.Amount.IsNegative(), "amount %s", out.Amounts.Amount)
				assert.False(t, out.Amounts.GST.IsNegative(), "gst %s", out.Amounts.GST)
				assert.False(t, out.Amounts.Full.IsNegative(), "full %s", out.Amounts.Full)
				assert.True(t, out.Summary.Total.LessThanOrEqual(decimal.RequireFromString("75.5")))
				for _, a := range out.Summary.Applied {
					assert.False(t, a.Applied.IsNegative())
					assert.True(t, a.Applied.LessThanOrEqual(a.Requested))
				}
			}
		}
	}
}

func TestNewRate(t *testing.T) {
	testCases := []struct {
		name        string
		assignments []discount.Assignment
		errIs       error
	}{
		{name: "membership and promo", assignments: []discount.Assignment{membership(30, 10), promoPercentage(5)}},
		{name: "empty", assignments: nil},
		{name: "two memberships", assignments: []discount.Assignment{membership(30, 0), membership(0, 10)}, errIs: discount.ErrDuplicateDiscountKind},
		{name: "two promos", assignments: []discount.Assignment{promoPercentage(5), promoMinutes(10)}, errIs: discount.ErrDuplicateDiscountKind},
		{
			name:        "promo mixing percentage and minutes",
			assignments: []discount.Assignment{{Kind: discount.KindPromo, Percentage: decimal.NewFromInt(5), FreeMinutes: 10}},
			errIs:       discount.ErrMixedPromo,
		},
		{name: "percentage above 100", assignments: []discount.Assignment{membership(0, 150)}, errIs: discount.ErrInvalidAssignment},
		{name: "negative free minutes", assignments: []discount.Assignment{membership(-5, 0)}, errIs: discount.ErrInvalidAssignment},
		{name: "unknown kind", assignments: []discount.Assignment{{Kind: "referral"}}, errIs: discount.ErrInvalidAssignment},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := discount.NewRate(tc.assignments)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.True(t, r.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tc.assignments) == 0, r.IsZero())
		})
	}
}
