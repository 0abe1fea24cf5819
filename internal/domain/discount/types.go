package discount

type Kind string

const (
	KindMembership Kind = "membership"
	KindPromo      Kind = "promo"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindMembership, KindPromo:
		return true
	default:
		return false
	}
}

type Method string

const (
	MethodFreeMinutes Method = "free-minutes"
	MethodPercentage  Method = "percentage"
)

func (m Method) String() string {
	return string(m)
}
