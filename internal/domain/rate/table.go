package rate

import (
	"slices"

	"interpreting-payments/internal/pkg/errs"
)

// Query selects the rows for one appointment.
type Query struct {
	InterpreterType   InterpreterType
	SchedulingType    SchedulingType
	CommunicationType CommunicationType
	InterpretingType  InterpretingType
	Topic             Topic
}

func (q Query) Validate() error {
	switch {
	case !q.InterpreterType.IsValid():
		return errs.Wrapf(ErrInvalidQuery, "interpreter type %q", q.InterpreterType)
	case !q.SchedulingType.IsValid():
		return errs.Wrapf(ErrInvalidQuery, "scheduling type %q", q.SchedulingType)
	case !q.CommunicationType.IsValid():
		return errs.Wrapf(ErrInvalidQuery, "communication type %q", q.CommunicationType)
	case !q.InterpretingType.IsValid():
		return errs.Wrapf(ErrInvalidQuery, "interpreting type %q", q.InterpretingType)
	case !q.Topic.IsValid():
		return errs.Wrapf(ErrInvalidQuery, "topic %q", q.Topic)
	}
	return ValidateCombination(q.InterpretingType, q.CommunicationType)
}

func (q Query) key(topic Topic, qualifier Qualifier, seq DetailsSequence) Key {
	return Key{
		InterpreterType:   q.InterpreterType,
		SchedulingType:    q.SchedulingType,
		CommunicationType: q.CommunicationType,
		InterpretingType:  q.InterpretingType,
		Topic:             topic,
		Qualifier:         qualifier,
		DetailsSequence:   seq,
	}
}

// Table is an immutable snapshot of one rate card version. It is safe for concurrent use.
type Table struct {
	rows   map[Key]Rate
	sorted []Rate
}

func NewTable(rows []Rate) (*Table, error) {
	t := &Table{
		rows:   make(map[Key]Rate, len(rows)),
		sorted: make([]Rate, 0, len(rows)),
	}
	for _, r := range rows {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, ok := t.rows[r.Key]; ok {
			return nil, errs.Wrapf(ErrDuplicateRate, "%s", r.Key)
		}
		t.rows[r.Key] = r
		t.sorted = append(t.sorted, r)
	}
	slices.SortFunc(t.sorted, Compare)
	return t, nil
}

func (t *Table) Len() int {
	return len(t.sorted)
}

// Rows returns every row in listing order.
func (t *Table) Rows() []Rate {
	return slices.Clone(t.sorted)
}

// Collection resolves the rows for q. A topic-specific row takes precedence over a row
// that applies to any topic.
func (t *Table) Collection(q Query) (Collection, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	standardFirst, ok := t.find(q, QualifierStandardHours, SequenceFirstMinutes)
	if !ok {
		allDay, ok := t.find(q, QualifierStandardHours, SequenceAllDay)
		if !ok {
			return nil, errs.Wrapf(ErrRateNotFound, "%s", q.key(q.Topic, QualifierStandardHours, SequenceFirstMinutes))
		}
		return FlatCollection{AllDay: allDay}, nil
	}

	standardAdditional, ok := t.find(q, QualifierStandardHours, SequenceAdditionalBlock)
	if !ok {
		return nil, errs.Wrapf(ErrRateNotFound, "%s", q.key(q.Topic, QualifierStandardHours, SequenceAdditionalBlock))
	}
	afterFirst, okFirst := t.find(q, QualifierAfterHours, SequenceFirstMinutes)
	afterAdditional, okAdditional := t.find(q, QualifierAfterHours, SequenceAdditionalBlock)
	if !okFirst || !okAdditional {
		return nil, errs.Wrapf(errs.Mark(ErrMissingAfterHoursRate, ErrRateNotFound), "%s", q.key(q.Topic, QualifierAfterHours, SequenceFirstMinutes))
	}

	return StandardCollection{
		StandardFirstMinutes:      standardFirst,
		StandardAdditionalBlock:   standardAdditional,
		AfterHoursFirstMinutes:    afterFirst,
		AfterHoursAdditionalBlock: afterAdditional,
	}, nil
}

func (t *Table) find(q Query, qualifier Qualifier, seq DetailsSequence) (Rate, bool) {
	if q.Topic != TopicAny {
		if r, ok := t.rows[q.key(q.Topic, qualifier, seq)]; ok {
			return r, true
		}
	}
	r, ok := t.rows[q.key(TopicAny, qualifier, seq)]
	return r, ok
}
