package payment

// ValidateAuthorization checks the fields every authorization needs, deferred or not.
func ValidateAuthorization(ctx AuthorizationContext) ValidationResult {
	return newValidationResult(payerErrors(ctx.ClientType, ctx.Currency, ctx.PaymentMethod, ctx.Company))
}

// ValidateAuthorizationFunding checks that a corporate client can be charged now. It only
// applies once the authorization is not deferred to the wait list.
func ValidateAuthorizationFunding(ctx AuthorizationContext) ValidationResult {
	return newValidationResult(fundingErrors(ctx.ClientType, ctx.Company, ctx.DepositCharge, ctx.PostPaymentCredit))
}

func ValidateAuthorizationCancel(ctx AuthorizationCancelContext) ValidationResult {
	var errors []string
	if !ctx.ClientType.IsValid() {
		errors = append(errors, "unknown client type")
	}
	if ctx.ExistingPayment == nil {
		errors = append(errors, "payment is required")
	}
	if isCorporate(ctx.ClientType) && ctx.Company == nil {
		errors = append(errors, "company context is required for corporate clients")
	}
	return newValidationResult(errors)
}

func ValidateAuthorizationRecreate(ctx AuthorizationRecreateContext) ValidationResult {
	var errors []string
	if ctx.ExistingPayment == nil {
		errors = append(errors, "existing payment is required")
	}
	if ctx.Prices == nil {
		errors = append(errors, "prices are required")
	}
	errors = append(errors, payerErrors(ctx.ClientType, ctx.Currency, ctx.PaymentMethod, ctx.Company)...)
	return newValidationResult(errors)
}

func ValidateAuthorizationRecreateFunding(ctx AuthorizationRecreateContext) ValidationResult {
	return newValidationResult(fundingErrors(ctx.ClientType, ctx.Company, ctx.DepositCharge, ctx.PostPaymentCredit))
}

func ValidateCapture(ctx CaptureContext) ValidationResult {
	var errors []string
	if !ctx.ClientType.IsValid() {
		errors = append(errors, "unknown client type")
	}
	if ctx.Prices == nil {
		errors = append(errors, "prices are required")
	}
	if ctx.ExistingPayment == nil {
		errors = append(errors, "payment is required")
	}
	if isCorporate(ctx.ClientType) && ctx.Company == nil {
		errors = append(errors, "company context is required for corporate clients")
	}
	if ctx.Commission != nil && ctx.Commission.IsSameCompany && !ctx.Commission.HasAmounts {
		errors = append(errors, "commission amounts are required for same-company capture")
	}
	sameCompany := ctx.Commission != nil && ctx.Commission.IsSameCompany
	if ctx.ExistingPayment != nil && !sameCompany && !isCorporate(ctx.ClientType) && !ctx.ExistingPayment.Status.IsCapturable() {
		errors = append(errors, "payment is not in a capturable state")
	}
	return newValidationResult(errors)
}

// ValidateTransfer checks the preconditions and, unless the companies net out, whether the
// interpreter can be paid.
func ValidateTransfer(ctx TransferContext) ValidationResult {
	errors := transferPreconditionErrors(ctx)
	if len(errors) > 0 || isSameCompanyTransfer(ctx) {
		return newValidationResult(errors)
	}

	status := ctx.ExistingPayment.Status
	switch {
	case status == StatusCaptured:
	case status == StatusTransferFailed && ctx.IsSecondAttempt:
	default:
		errors = append(errors, "payment has not been captured")
	}

	payout := ctx.Interpreter
	if payout.PayoutAccountID == "" {
		errors = append(errors, "payout account is required")
	}
	if !payout.IsCorporate {
		switch {
		case !payout.PayoutMethod.IsValid():
			errors = append(errors, "unknown payout method")
		case payout.PayoutMethod == PayoutMethodPlatformAccount && !payout.PayoutsEnabled && !ctx.IsSecondAttempt:
			errors = append(errors, "payouts are not enabled on the platform account")
		}
	}
	return newValidationResult(errors)
}

func transferPreconditionErrors(ctx TransferContext) []string {
	var errors []string
	if ctx.ExistingPayment == nil {
		errors = append(errors, "payment is required")
	}
	if ctx.Prices == nil {
		errors = append(errors, "prices are required")
	}
	return errors
}

func payerErrors(clientType ClientType, currency string, method *PaymentMethodSnapshot, company *CompanyContext) []string {
	var errors []string
	if currency == "" {
		errors = append(errors, "currency is required")
	}

	switch clientType {
	case ClientTypeIndividual:
		if method == nil {
			errors = append(errors, "payment method is required")
		}
	case ClientTypeCorporate:
		switch {
		case company == nil:
			errors = append(errors, "company context is required for corporate clients")
		case !company.FundingSource.IsValid():
			errors = append(errors, "unknown company funding source")
		}
	default:
		errors = append(errors, "unknown client type")
	}
	return errors
}

// fundingErrors reports why a corporate client cannot be charged from its funding source.
func fundingErrors(
	clientType ClientType,
	company *CompanyContext,
	deposit *DepositChargeContext,
	credit *PostPaymentCreditContext,
) []string {
	if !isCorporate(clientType) || company == nil {
		return nil
	}

	var errors []string
	switch company.FundingSource {
	case FundingSourceDepositCharge:
		switch {
		case deposit == nil:
			errors = append(errors, "deposit charge context is required")
		case !deposit.IsBalanceSufficient:
			errors = append(errors, "insufficient deposit balance")
		}
	case FundingSourcePostPaymentCredit:
		switch {
		case credit == nil:
			errors = append(errors, "post-payment credit context is required")
		case !credit.IsWithinLimit:
			errors = append(errors, "post-payment credit limit exceeded")
		}
	}
	return errors
}
