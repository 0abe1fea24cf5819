package pricing

import (
	"fmt"
	"slices"
	"time"
)

type Stage string

const (
	StageConfig   Stage = "config"
	StageRates    Stage = "rates"
	StageBoundary Stage = "boundary"
	StageBlocks   Stage = "blocks"
	StagePrice    Stage = "price"
	StageDiscount Stage = "discount"
	StageResult   Stage = "result"
)

type AuditField struct {
	Key   string
	Value string
}

type AuditStep struct {
	Stage   Stage
	Message string
	Fields  []AuditField
}

// AuditCollector accumulates the steps of a single detailed calculation. A nil collector
// discards everything, so non-detailed modes pass nil.
type AuditCollector struct {
	steps []AuditStep
}

func NewAuditCollector() *AuditCollector {
	return &AuditCollector{}
}

func (c *AuditCollector) Record(stage Stage, message string, fields ...AuditField) {
	if c == nil {
		return
	}
	c.steps = append(c.steps, AuditStep{Stage: stage, Message: message, Fields: fields})
}

func (c *AuditCollector) Steps() []AuditStep {
	if c == nil {
		return nil
	}
	return slices.Clone(c.steps)
}

func (c *AuditCollector) Len() int {
	if c == nil {
		return 0
	}
	return len(c.steps)
}

func field(key string, value any) AuditField {
	switch v := value.(type) {
	case time.Time:
		return AuditField{Key: key, Value: v.Format(time.RFC3339)}
	case fmt.Stringer:
		return AuditField{Key: key, Value: v.String()}
	default:
		return AuditField{Key: key, Value: fmt.Sprint(v)}
	}
}
