package payment

import (
	"interpreting-payments/internal/domain/pricing"

	"github.com/google/uuid"
)

type AuthorizationContext struct {
	AppointmentID     uuid.UUID
	ClientType        ClientType
	Currency          string
	PaymentMethod     *PaymentMethodSnapshot
	ExistingPayment   *PaymentSnapshot
	Prices            *pricing.Result
	Timing            TimingContext
	WaitList          WaitListContext
	Company           *CompanyContext
	DepositCharge     *DepositChargeContext
	PostPaymentCredit *PostPaymentCreditContext
}

func (AuthorizationContext) Operation() Operation { return OperationAuthorization }

type AuthorizationCancelContext struct {
	AppointmentID   uuid.UUID
	ClientType      ClientType
	ExistingPayment *PaymentSnapshot
	Company         *CompanyContext
}

func (AuthorizationCancelContext) Operation() Operation { return OperationAuthorizationCancel }

// AuthorizationRecreateContext is used when a rescheduled or repriced appointment needs a new
// authorization in place of ExistingPayment.
type AuthorizationRecreateContext struct {
	AppointmentID     uuid.UUID
	ClientType        ClientType
	Currency          string
	PaymentMethod     *PaymentMethodSnapshot
	ExistingPayment   *PaymentSnapshot
	Prices            *pricing.Result
	Timing            TimingContext
	WaitList          WaitListContext
	Company           *CompanyContext
	DepositCharge     *DepositChargeContext
	PostPaymentCredit *PostPaymentCreditContext
}

func (AuthorizationRecreateContext) Operation() Operation { return OperationAuthorizationRecreate }

type CaptureContext struct {
	AppointmentID   uuid.UUID
	ClientType      ClientType
	ExistingPayment *PaymentSnapshot
	Prices          *pricing.Result
	Company         *CompanyContext
	Commission      *CommissionContext
}

func (CaptureContext) Operation() Operation { return OperationCapture }

type TransferContext struct {
	AppointmentID   uuid.UUID
	ExistingPayment *PaymentSnapshot
	Prices          *pricing.Result
	Interpreter     InterpreterPayoutContext
	Commission      *CommissionContext
	IsSecondAttempt bool
}

func (TransferContext) Operation() Operation { return OperationTransfer }
