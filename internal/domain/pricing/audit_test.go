//go:build unit

package pricing_test

import (
	"testing"

	"interpreting-payments/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestAuditCollector(t *testing.T) {
	t.Run("records steps in order", func(t *testing.T) {
		c := pricing.NewAuditCollector()
		c.Record(pricing.StageConfig, "validated")
		c.Record(pricing.StageRates, "resolved", pricing.AuditField{Key: "first_minutes", Value: "30"})

		steps := c.Steps()

		assert.Equal(t, 2, c.Len())
		assert.Equal(t, []pricing.AuditStep{
			{Stage: pricing.StageConfig, Message: "validated"},
			{Stage: pricing.StageRates, Message: "resolved", Fields: []pricing.AuditField{{Key: "first_minutes", Value: "30"}}},
		}, steps)
	})

	t.Run("steps are a copy", func(t *testing.T) {
		c := pricing.NewAuditCollector()
		c.Record(pricing.StageResult, "assembled")

		steps := c.Steps()
		steps[0].Message = "changed"

		assert.Equal(t, "assembled", c.Steps()[0].Message)
	})

	t.Run("nil collector discards", func(t *testing.T) {
		var c *pricing.AuditCollector

		assert.NotPanics(t, func() { c.Record(pricing.StagePrice, "ignored") })
		assert.Nil(t, c.Steps())
		assert.Zero(t, c.Len())
	})
}
