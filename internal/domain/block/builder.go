package block

import (
	"time"

	"interpreting-payments/internal/domain/boundary"
	"interpreting-payments/internal/domain/rate"
	"interpreting-payments/internal/pkg/errs"
)

var (
	ErrInvalidDuration   = errs.New("duration must be positive")
	ErrInvalidBlockSize  = errs.New("block size must be positive")
	ErrRoundingInvariant = errs.New("block durations do not sum to the input duration")
)

type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build decomposes total minutes starting at start into blocks. The span is split at every
// normal-hours boundary the client crosses and each piece is decomposed on its own. The
// interpreter's boundaries never change the block structure; they only split the interpreter
// side of the blocks they fall inside.
func (b *Builder) Build(total int, start time.Time, br boundary.Result, rates rate.Collection) (Result, error) {
	if total <= 0 {
		return Result{}, errs.Wrapf(ErrInvalidDuration, "got %d", total)
	}

	res := Result{Scenario: br.Client.Scenario}
	if rates.IsFlat() {
		seg := newSegment(start, total, br)
		blocks, added, err := seg.decompose(rates.BlockSizes(rate.QualifierStandardHours), rate.SequenceAllDay, rate.SequenceAllDay)
		if err != nil {
			return Result{}, err
		}
		res.Blocks = blocks
		res.AddedDurationToLastBlockWhenRounding = added
	} else {
		for _, seg := range segments(total, start, br) {
			sizes := rates.BlockSizes(seg.clientMode.Qualifier())
			blocks, added, err := seg.decompose(sizes, rate.SequenceFirstMinutes, rate.SequenceAdditionalBlock)
			if err != nil {
				return Result{}, err
			}
			res.Blocks = append(res.Blocks, blocks...)
			res.AddedDurationToLastBlockWhenRounding += added
		}
	}
	res.Blocks = withInterpreterModes(res.Blocks, br.Interpreter)

	if got := res.TotalDuration(); got != total {
		return Result{}, errs.Wrapf(ErrRoundingInvariant, "got %d, want %d", got, total)
	}
	return res, nil
}

// BuildExtension returns the single additional block that extends an appointment past start.
func (b *Builder) BuildExtension(start time.Time, br boundary.Result, rates rate.Collection) (Result, error) {
	seq := rate.SequenceAdditionalBlock
	if rates.IsFlat() {
		seq = rate.SequenceAllDay
	}
	size := rates.BlockSizes(br.Client.ModeAt(start).Qualifier()).AdditionalBlock
	if size <= 0 {
		return Result{}, errs.Wrapf(ErrInvalidBlockSize, "additional block size %d", size)
	}

	seg := newSegment(start, size, br)
	return Result{
		Scenario: br.Client.Scenario,
		Blocks:   withInterpreterModes([]Block{seg.block(seq, start, size)}, br.Interpreter),
	}, nil
}

// segment is a span in which the client does not change mode.
type segment struct {
	start      time.Time
	duration   int
	clientMode boundary.Mode
	cross      bool
}

func newSegment(start time.Time, duration int, br boundary.Result) segment {
	return segment{
		start:      start,
		duration:   duration,
		clientMode: br.Client.ModeAt(midpoint(start, duration)),
		cross:      br.RequiresCrossRateLogic,
	}
}

func segments(total int, start time.Time, br boundary.Result) []segment {
	var offsets []int
	last := 0
	for _, p := range br.Client.CrossingPoints() {
		off := int(p.Sub(start) / time.Minute)
		if off <= last || off >= total {
			continue
		}
		offsets = append(offsets, off)
		last = off
	}

	segs := make([]segment, 0, len(offsets)+1)
	prev := 0
	for _, off := range append(offsets, total) {
		segs = append(segs, newSegment(start.Add(time.Duration(prev)*time.Minute), off-prev, br))
		prev = off
	}
	return segs
}

// decompose emits one first block of min(minutes, first size) followed by whole additional
// blocks. The remainder is added to the last block emitted.
func (s segment) decompose(sizes rate.BlockSizes, firstSeq, additionalSeq rate.DetailsSequence) ([]Block, int, error) {
	if sizes.FirstMinutes <= 0 || sizes.AdditionalBlock <= 0 {
		return nil, 0, errs.Wrapf(ErrInvalidBlockSize, "first %d, additional %d", sizes.FirstMinutes, sizes.AdditionalBlock)
	}

	first := min(s.duration, sizes.FirstMinutes)
	rest := s.duration - first
	n := rest / sizes.AdditionalBlock
	remainder := rest % sizes.AdditionalBlock

	blocks := make([]Block, 0, n+1)
	blocks = append(blocks, s.block(firstSeq, s.start, first))
	cursor := s.start.Add(time.Duration(first) * time.Minute)
	for range n {
		blocks = append(blocks, s.block(additionalSeq, cursor, sizes.AdditionalBlock))
		cursor = cursor.Add(time.Duration(sizes.AdditionalBlock) * time.Minute)
	}
	blocks[len(blocks)-1].Duration += remainder
	return blocks, remainder, nil
}

func (s segment) block(seq rate.DetailsSequence, start time.Time, duration int) Block {
	return Block{
		Type:                   seq,
		Start:                  start,
		Duration:               duration,
		ClientMode:             s.clientMode,
		RequiresCrossRateLogic: s.cross,
	}
}

// withInterpreterModes sets the interpreter mode of every block and splits the interpreter side
// of a block at each interpreter boundary lying strictly inside it. Block bounds are unchanged.
func withInterpreterModes(blocks []Block, interpreter boundary.Details) []Block {
	points := interpreter.CrossingPoints()
	for i := range blocks {
		b := &blocks[i]
		b.InterpreterMode = interpreter.ModeAt(midpoint(b.Start, b.Duration))
		b.InterpreterSplit = nil

		cursor, used := b.Start, 0
		for _, p := range points {
			if !p.After(cursor) || !p.Before(b.End()) {
				continue
			}
			n := int(p.Sub(cursor) / time.Minute)
			if n <= 0 {
				continue
			}
			b.InterpreterSplit = append(b.InterpreterSplit, InterpreterSpan{Mode: interpreter.ModeAt(cursor), Duration: n})
			cursor = cursor.Add(time.Duration(n) * time.Minute)
			used += n
		}
		if len(b.InterpreterSplit) > 0 {
			b.InterpreterSplit = append(b.InterpreterSplit, InterpreterSpan{Mode: interpreter.ModeAt(cursor), Duration: b.Duration - used})
		}
	}
	return blocks
}

func midpoint(start time.Time, duration int) time.Time {
	return start.Add(time.Duration(duration) * time.Minute / 2)
}
