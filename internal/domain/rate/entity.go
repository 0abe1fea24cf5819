package rate

import (
	"cmp"
	"fmt"

	"interpreting-payments/internal/pkg/errs"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

var (
	ErrRateNotFound          = errs.New("rate not found")
	ErrDuplicateRate         = errs.New("duplicate rate row")
	ErrInvalidRate           = errs.New("invalid rate row")
	ErrInvalidCombination    = errs.New("invalid interpreting and communication type combination")
	ErrMissingAfterHoursRate = errs.New("after-hours rate missing for non-flat rate card")
	ErrInvalidQuery          = errs.New("invalid rate query")
)

// Key identifies one rate row.
type Key struct {
	InterpreterType   InterpreterType
	SchedulingType    SchedulingType
	CommunicationType CommunicationType
	InterpretingType  InterpretingType
	Topic             Topic
	Qualifier         Qualifier
	DetailsSequence   DetailsSequence
}

func (k Key) String() string {
	topic := string(k.Topic)
	if topic == "" {
		topic = "*"
	}
	return fmt.Sprintf("%s/%s/%s/%s/%s/%s/%s",
		k.InterpreterType, k.SchedulingType, k.CommunicationType, k.InterpretingType,
		topic, k.Qualifier, k.DetailsSequence)
}

// Rate is one row of the versioned rate card. All amounts are for one full DetailsTime block.
type Rate struct {
	Key

	NormalHoursStart civil.Time
	NormalHoursEnd   civil.Time
	DetailsTime      int

	PaidByClientWithGST         decimal.Decimal
	PaidByClientWithoutGST      decimal.Decimal
	CommissionWithGST           decimal.Decimal
	CommissionWithoutGST        decimal.Decimal
	PaidToInterpreterWithGST    decimal.Decimal
	PaidToInterpreterWithoutGST decimal.Decimal

	// GST-exempt amounts, used for parties that are not registered for GST.
	PaidByClientSpecial      decimal.NullDecimal
	PaidToInterpreterSpecial decimal.NullDecimal
}

func (r Rate) Validate() error {
	switch {
	case !r.InterpreterType.IsValid():
		return errs.Wrapf(ErrInvalidRate, "%s: interpreter type %q", r.Key, r.InterpreterType)
	case !r.SchedulingType.IsValid():
		return errs.Wrapf(ErrInvalidRate, "%s: scheduling type %q", r.Key, r.SchedulingType)
	case !r.CommunicationType.IsValid():
		return errs.Wrapf(ErrInvalidRate, "%s: communication type %q", r.Key, r.CommunicationType)
	case !r.InterpretingType.IsValid():
		return errs.Wrapf(ErrInvalidRate, "%s: interpreting type %q", r.Key, r.InterpretingType)
	case !r.Topic.IsValid():
		return errs.Wrapf(ErrInvalidRate, "%s: topic %q", r.Key, r.Topic)
	case !r.Qualifier.IsValid():
		return errs.Wrapf(ErrInvalidRate, "%s: qualifier %q", r.Key, r.Qualifier)
	case !r.DetailsSequence.IsValid():
		return errs.Wrapf(ErrInvalidRate, "%s: details sequence %q", r.Key, r.DetailsSequence)
	case !IsValidDetailsTime(r.DetailsTime):
		return errs.Wrapf(ErrInvalidRate, "%s: details time %d", r.Key, r.DetailsTime)
	case !r.NormalHoursStart.IsValid() || !r.NormalHoursEnd.IsValid():
		return errs.Wrapf(ErrInvalidRate, "%s: normal hours", r.Key)
	case !r.NormalHoursStart.Before(r.NormalHoursEnd):
		return errs.Wrapf(ErrInvalidRate, "%s: normal hours start %s not before end %s", r.Key, r.NormalHoursStart, r.NormalHoursEnd)
	case r.DetailsSequence == SequenceAllDay && r.Qualifier != QualifierStandardHours:
		return errs.Wrapf(ErrInvalidRate, "%s: all-day rows are standard-hours only", r.Key)
	}

	for _, amount := range []decimal.Decimal{
		r.PaidByClientWithGST, r.PaidByClientWithoutGST,
		r.CommissionWithGST, r.CommissionWithoutGST,
		r.PaidToInterpreterWithGST, r.PaidToInterpreterWithoutGST,
	} {
		if amount.IsNegative() {
			return errs.Wrapf(ErrInvalidRate, "%s: negative amount", r.Key)
		}
	}
	return nil
}

// Less orders rows by the enum ordering tables, then by topic.
func Less(a, b Rate) bool {
	return Compare(a, b) < 0
}

func Compare(a, b Rate) int {
	if c := cmp.Compare(interpreterTypeOrder[a.InterpreterType], interpreterTypeOrder[b.InterpreterType]); c != 0 {
		return c
	}
	if c := cmp.Compare(schedulingTypeOrder[a.SchedulingType], schedulingTypeOrder[b.SchedulingType]); c != 0 {
		return c
	}
	if c := cmp.Compare(communicationTypeOrder[a.CommunicationType], communicationTypeOrder[b.CommunicationType]); c != 0 {
		return c
	}
	if c := cmp.Compare(interpretingTypeOrder[a.InterpretingType], interpretingTypeOrder[b.InterpretingType]); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Topic, b.Topic); c != 0 {
		return c
	}
	if c := cmp.Compare(qualifierOrder[a.Qualifier], qualifierOrder[b.Qualifier]); c != 0 {
		return c
	}
	return cmp.Compare(sequenceOrder[a.DetailsSequence], sequenceOrder[b.DetailsSequence])
}

// ValidateCombination rejects interpreting/communication pairs that cannot be booked.
func ValidateCombination(interpreting InterpretingType, communication CommunicationType) error {
	switch interpreting {
	case InterpretingTypeSimultaneous, InterpretingTypeEscort:
		if communication != CommunicationTypeFaceToFace {
			return errs.Wrapf(ErrInvalidCombination, "%s requires %s, got %s", interpreting, CommunicationTypeFaceToFace, communication)
		}
	case InterpretingTypeSignLanguage:
		if communication == CommunicationTypeAudio {
			return errs.Wrapf(ErrInvalidCombination, "%s cannot be delivered over %s", interpreting, communication)
		}
	}
	return nil
}
