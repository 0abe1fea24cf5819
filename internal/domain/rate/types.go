package rate

type InterpreterType string

const (
	InterpreterTypeProfessional  InterpreterType = "professional-interpreter"
	InterpreterTypeLanguageBuddy InterpreterType = "language-buddy-interpreter"
)

func (t InterpreterType) String() string { return string(t) }

func (t InterpreterType) IsValid() bool {
	_, ok := interpreterTypeOrder[t]
	return ok
}

type SchedulingType string

const (
	SchedulingTypeOnDemand  SchedulingType = "on-demand"
	SchedulingTypePreBooked SchedulingType = "pre-booked"
)

func (t SchedulingType) String() string { return string(t) }

func (t SchedulingType) IsValid() bool {
	_, ok := schedulingTypeOrder[t]
	return ok
}

type CommunicationType string

const (
	CommunicationTypeAudio      CommunicationType = "audio"
	CommunicationTypeVideo      CommunicationType = "video"
	CommunicationTypeFaceToFace CommunicationType = "face-to-face"
)

func (t CommunicationType) String() string { return string(t) }

func (t CommunicationType) IsValid() bool {
	_, ok := communicationTypeOrder[t]
	return ok
}

type InterpretingType string

const (
	InterpretingTypeConsecutive  InterpretingType = "consecutive"
	InterpretingTypeSimultaneous InterpretingType = "simultaneous"
	InterpretingTypeSignLanguage InterpretingType = "sign-language"
	InterpretingTypeEscort       InterpretingType = "escort"
)

func (t InterpretingType) String() string { return string(t) }

func (t InterpretingType) IsValid() bool {
	_, ok := interpretingTypeOrder[t]
	return ok
}

// Topic narrows a rate row to one subject area. TopicAny rows apply to every topic.
type Topic string

const (
	TopicAny     Topic = ""
	TopicGeneral Topic = "general"
	TopicMedical Topic = "medical"
	TopicLegal   Topic = "legal"
)

func (t Topic) String() string { return string(t) }

func (t Topic) IsValid() bool {
	switch t {
	case TopicAny, TopicGeneral, TopicMedical, TopicLegal:
		return true
	default:
		return false
	}
}

// Qualifier tells which part of the day a rate row prices.
type Qualifier string

const (
	QualifierStandardHours Qualifier = "standard-hours"
	QualifierAfterHours    Qualifier = "after-hours"
)

func (q Qualifier) String() string { return string(q) }

func (q Qualifier) IsValid() bool {
	switch q {
	case QualifierStandardHours, QualifierAfterHours:
		return true
	default:
		return false
	}
}

type DetailsSequence string

const (
	SequenceFirstMinutes    DetailsSequence = "first-minutes"
	SequenceAdditionalBlock DetailsSequence = "additional-block"
	SequenceAllDay          DetailsSequence = "all-day"
)

func (s DetailsSequence) String() string { return string(s) }

func (s DetailsSequence) IsValid() bool {
	switch s {
	case SequenceFirstMinutes, SequenceAdditionalBlock, SequenceAllDay:
		return true
	default:
		return false
	}
}

// allowedDetailsTimes lists the block sizes (minutes) a rate card may use.
var allowedDetailsTimes = map[int]struct{}{
	5: {}, 10: {}, 15: {}, 30: {}, 60: {}, 90: {}, 120: {}, 480: {},
}

func IsValidDetailsTime(minutes int) bool {
	_, ok := allowedDetailsTimes[minutes]
	return ok
}

// Ordering tables used by listing endpoints to sort rate rows. The numbers are part of the
// contract with those endpoints and must not be renumbered.
var (
	interpreterTypeOrder = map[InterpreterType]int{
		InterpreterTypeProfessional:  1,
		InterpreterTypeLanguageBuddy: 2,
	}
	schedulingTypeOrder = map[SchedulingType]int{
		SchedulingTypeOnDemand:  1,
		SchedulingTypePreBooked: 2,
	}
	communicationTypeOrder = map[CommunicationType]int{
		CommunicationTypeAudio:      1,
		CommunicationTypeVideo:      2,
		CommunicationTypeFaceToFace: 3,
	}
	interpretingTypeOrder = map[InterpretingType]int{
		InterpretingTypeConsecutive:  1,
		InterpretingTypeSimultaneous: 2,
		InterpretingTypeSignLanguage: 3,
		InterpretingTypeEscort:       4,
	}
	qualifierOrder = map[Qualifier]int{
		QualifierStandardHours: 1,
		QualifierAfterHours:    2,
	}
	sequenceOrder = map[DetailsSequence]int{
		SequenceFirstMinutes:    1,
		SequenceAdditionalBlock: 2,
		SequenceAllDay:          3,
	}
)
