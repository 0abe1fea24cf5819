package block

import (
	"time"

	"interpreting-payments/internal/domain/boundary"
	"interpreting-payments/internal/domain/rate"

	"github.com/shopspring/decimal"
)

// Block is one contiguous sub-interval priced against a single client rate row.
// ClientPrice and InterpreterPayment stay zero until the block is priced. InterpreterSplit is
// set only when the interpreter changes mode inside the block.
type Block struct {
	Type                   rate.DetailsSequence
	Start                  time.Time
	Duration               int
	ClientMode             boundary.Mode
	InterpreterMode        boundary.Mode
	InterpreterSplit       []InterpreterSpan
	RequiresCrossRateLogic bool
	ClientPrice            decimal.Decimal
	InterpreterPayment     decimal.Decimal
}

// InterpreterSpan is a part of a block in which the interpreter stays in one mode.
type InterpreterSpan struct {
	Mode     boundary.Mode
	Duration int
}

// InterpreterSpans returns the interpreter's mode changes inside b, or b as a single span.
func (b Block) InterpreterSpans() []InterpreterSpan {
	if len(b.InterpreterSplit) > 0 {
		return b.InterpreterSplit
	}
	return []InterpreterSpan{{Mode: b.InterpreterMode, Duration: b.Duration}}
}

func (b Block) End() time.Time {
	return b.Start.Add(time.Duration(b.Duration) * time.Minute)
}

type Result struct {
	Scenario boundary.Scenario
	Blocks   []Block
	// AddedDurationToLastBlockWhenRounding is the number of remainder minutes folded into the
	// last block of each decomposed span.
	AddedDurationToLastBlockWhenRounding int
}

func (r Result) TotalDuration() int {
	total := 0
	for _, b := range r.Blocks {
		total += b.Duration
	}
	return total
}

// WithBlocks returns a copy of r holding blocks.
func (r Result) WithBlocks(blocks []Block) Result {
	r.Blocks = blocks
	return r
}
