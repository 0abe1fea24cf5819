package payment

type Operation string

const (
	OperationAuthorization         Operation = "authorization"
	OperationAuthorizationCancel   Operation = "authorization-cancel"
	OperationAuthorizationRecreate Operation = "authorization-recreate"
	OperationCapture               Operation = "capture"
	OperationTransfer              Operation = "transfer"
)

func (o Operation) String() string {
	return string(o)
}

func (o Operation) IsValid() bool {
	switch o {
	case OperationAuthorization, OperationAuthorizationCancel, OperationAuthorizationRecreate,
		OperationCapture, OperationTransfer:
		return true
	default:
		return false
	}
}

type ClientType string

const (
	ClientTypeIndividual ClientType = "individual"
	ClientTypeCorporate  ClientType = "corporate"
)

func (t ClientType) String() string {
	return string(t)
}

func (t ClientType) IsValid() bool {
	switch t {
	case ClientTypeIndividual, ClientTypeCorporate:
		return true
	default:
		return false
	}
}

// FundingSource is how a corporate client pays for appointments.
type FundingSource string

const (
	FundingSourceDepositCharge     FundingSource = "deposit-charge"
	FundingSourcePostPaymentCredit FundingSource = "post-payment-credit"
)

func (s FundingSource) String() string {
	return string(s)
}

func (s FundingSource) IsValid() bool {
	switch s {
	case FundingSourceDepositCharge, FundingSourcePostPaymentCredit:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending             Status = "pending"
	StatusAuthorized          Status = "authorized"
	StatusAuthorizationFailed Status = "authorization-failed"
	StatusCanceled            Status = "canceled"
	StatusCaptured            Status = "captured"
	StatusCaptureFailed       Status = "capture-failed"
	StatusTransferred         Status = "transferred"
	StatusTransferFailed      Status = "transfer-failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAuthorized, StatusAuthorizationFailed, StatusCanceled,
		StatusCaptured, StatusCaptureFailed, StatusTransferred, StatusTransferFailed:
		return true
	default:
		return false
	}
}

// IsCapturable reports whether funds are held and can still be captured or released.
func (s Status) IsCapturable() bool {
	return s == StatusAuthorized || s == StatusCaptureFailed
}

// IsSettled reports whether money has already moved.
func (s Status) IsSettled() bool {
	return s == StatusCaptured || s == StatusTransferred || s == StatusTransferFailed
}

type PayoutMethod string

const (
	PayoutMethodPersonalCard    PayoutMethod = "personal-card"
	PayoutMethodPlatformAccount PayoutMethod = "platform-account"
)

func (m PayoutMethod) String() string {
	return string(m)
}

func (m PayoutMethod) IsValid() bool {
	switch m {
	case PayoutMethodPersonalCard, PayoutMethodPlatformAccount:
		return true
	default:
		return false
	}
}
