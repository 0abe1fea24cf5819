package payment

// Strategy is the decision a selector returns for one operation.
type Strategy interface {
	~string
	String() string
	IsValidationFailed() bool
	// IsExecutable reports whether the execution layer has work to do for the strategy.
	IsExecutable() bool
}

type AuthorizationStrategy string

const (
	AuthorizationStrategyValidationFailed       AuthorizationStrategy = "validation-failed"
	AuthorizationStrategyWaitListRedirect       AuthorizationStrategy = "wait-list-redirect"
	AuthorizationStrategyCorporateDepositCharge AuthorizationStrategy = "corporate-deposit-charge"
	AuthorizationStrategyCorporatePostPayment   AuthorizationStrategy = "corporate-post-payment"
	AuthorizationStrategyIndividualStripeAuth   AuthorizationStrategy = "individual-stripe-auth"
)

func (s AuthorizationStrategy) String() string {
	return string(s)
}

func (s AuthorizationStrategy) IsValidationFailed() bool {
	return s == AuthorizationStrategyValidationFailed
}

func (s AuthorizationStrategy) IsExecutable() bool {
	return !s.IsValidationFailed()
}

type AuthorizationCancelStrategy string

const (
	AuthorizationCancelStrategyValidationFailed              AuthorizationCancelStrategy = "validation-failed"
	AuthorizationCancelStrategyCorporateAuthorizationCancel  AuthorizationCancelStrategy = "corporate-authorization-cancel"
	AuthorizationCancelStrategyIndividualAuthorizationCancel AuthorizationCancelStrategy = "individual-authorization-cancel"
	AuthorizationCancelStrategyNotAllowed                    AuthorizationCancelStrategy = "authorization-cancel-not-allowed"
)

func (s AuthorizationCancelStrategy) String() string {
	return string(s)
}

func (s AuthorizationCancelStrategy) IsValidationFailed() bool {
	return s == AuthorizationCancelStrategyValidationFailed
}

func (s AuthorizationCancelStrategy) IsExecutable() bool {
	return !s.IsValidationFailed() && s != AuthorizationCancelStrategyNotAllowed
}

type AuthorizationRecreateStrategy string

const (
	AuthorizationRecreateStrategyValidationFailed               AuthorizationRecreateStrategy = "validation-failed"
	AuthorizationRecreateStrategyNotAllowed                     AuthorizationRecreateStrategy = "recreate-not-allowed"
	AuthorizationRecreateStrategyWaitListRedirect               AuthorizationRecreateStrategy = "wait-list-redirect"
	AuthorizationRecreateStrategyCorporateRecreate              AuthorizationRecreateStrategy = "corporate-recreate"
	AuthorizationRecreateStrategyIndividualCancelAndReauthorize AuthorizationRecreateStrategy = "individual-cancel-and-reauthorize"
	AuthorizationRecreateStrategyIndividualReauthorize          AuthorizationRecreateStrategy = "individual-reauthorize"
)

func (s AuthorizationRecreateStrategy) String() string {
	return string(s)
}

func (s AuthorizationRecreateStrategy) IsValidationFailed() bool {
	return s == AuthorizationRecreateStrategyValidationFailed
}

func (s AuthorizationRecreateStrategy) IsExecutable() bool {
	return !s.IsValidationFailed() && s != AuthorizationRecreateStrategyNotAllowed
}

type CaptureStrategy string

const (
	CaptureStrategyValidationFailed      CaptureStrategy = "validation-failed"
	CaptureStrategySameCompanyCommission CaptureStrategy = "same-company-commission"
	CaptureStrategyCorporateCapture      CaptureStrategy = "corporate-capture"
	CaptureStrategyIndividualCapture     CaptureStrategy = "individual-capture"
)

func (s CaptureStrategy) String() string {
	return string(s)
}

func (s CaptureStrategy) IsValidationFailed() bool {
	return s == CaptureStrategyValidationFailed
}

func (s CaptureStrategy) IsExecutable() bool {
	return !s.IsValidationFailed()
}

type TransferStrategy string

const (
	TransferStrategyValidationFailed                  TransferStrategy = "validation-failed"
	TransferStrategyNoTransferRequired                TransferStrategy = "no-transfer-required"
	TransferStrategyCorporatePayout                   TransferStrategy = "corporate-payout"
	TransferStrategyIndividualPersonalCardPayout      TransferStrategy = "individual-personal-card-payout"
	TransferStrategyIndividualPlatformAccountTransfer TransferStrategy = "individual-platform-account-transfer"
)

func (s TransferStrategy) String() string {
	return string(s)
}

func (s TransferStrategy) IsValidationFailed() bool {
	return s == TransferStrategyValidationFailed
}

func (s TransferStrategy) IsExecutable() bool {
	return !s.IsValidationFailed() && s != TransferStrategyNoTransferRequired
}
