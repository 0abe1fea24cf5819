package payment

// rule is one guard of a selector. Guards are evaluated in order and the first match wins.
type rule[C any, S Strategy] struct {
	when func(C) bool
	then S
}

func firstMatch[C any, S Strategy](ctx C, fallback S, rules ...rule[C, S]) S {
	for _, r := range rules {
		if r.when(ctx) {
			return r.then
		}
	}
	return fallback
}

func isCorporate(t ClientType) bool {
	return t == ClientTypeCorporate
}

func shouldRedirectToWaitList(timing TimingContext, waitList WaitListContext) bool {
	return !waitList.Disabled && !timing.IsTooLateForPayment && timing.IsBeyondWaitListThreshold
}

func SelectAuthorizationStrategy(ctx AuthorizationContext) AuthorizationStrategy {
	return selectAuthorization(ctx, ValidateAuthorization(ctx), ValidateAuthorizationFunding(ctx))
}

// selectAuthorization checks funding only once the authorization is not deferred to the wait list.
func selectAuthorization(ctx AuthorizationContext, v, funding ValidationResult) AuthorizationStrategy {
	return firstMatch(ctx, AuthorizationStrategyIndividualStripeAuth,
		rule[AuthorizationContext, AuthorizationStrategy]{
			when: func(AuthorizationContext) bool { return !v.Valid },
			then: AuthorizationStrategyValidationFailed,
		},
		rule[AuthorizationContext, AuthorizationStrategy]{
			when: func(c AuthorizationContext) bool {
				return c.ExistingPayment == nil && shouldRedirectToWaitList(c.Timing, c.WaitList)
			},
			then: AuthorizationStrategyWaitListRedirect,
		},
		rule[AuthorizationContext, AuthorizationStrategy]{
			when: func(AuthorizationContext) bool { return !funding.Valid },
			then: AuthorizationStrategyValidationFailed,
		},
		rule[AuthorizationContext, AuthorizationStrategy]{
			when: func(c AuthorizationContext) bool {
				return isCorporate(c.ClientType) && c.Company.FundingSource == FundingSourceDepositCharge
			},
			then: AuthorizationStrategyCorporateDepositCharge,
		},
		rule[AuthorizationContext, AuthorizationStrategy]{
			when: func(c AuthorizationContext) bool {
				return isCorporate(c.ClientType) && c.Company.FundingSource == FundingSourcePostPaymentCredit
			},
			then: AuthorizationStrategyCorporatePostPayment,
		},
	)
}

func SelectAuthorizationCancelStrategy(ctx AuthorizationCancelContext) AuthorizationCancelStrategy {
	return selectAuthorizationCancel(ctx, ValidateAuthorizationCancel(ctx))
}

func selectAuthorizationCancel(ctx AuthorizationCancelContext, v ValidationResult) AuthorizationCancelStrategy {
	return firstMatch(ctx, AuthorizationCancelStrategyIndividualAuthorizationCancel,
		rule[AuthorizationCancelContext, AuthorizationCancelStrategy]{
			when: func(AuthorizationCancelContext) bool { return !v.Valid },
			then: AuthorizationCancelStrategyValidationFailed,
		},
		rule[AuthorizationCancelContext, AuthorizationCancelStrategy]{
			when: func(c AuthorizationCancelContext) bool { return !c.ExistingPayment.Status.IsCapturable() },
			then: AuthorizationCancelStrategyNotAllowed,
		},
		rule[AuthorizationCancelContext, AuthorizationCancelStrategy]{
			when: func(c AuthorizationCancelContext) bool { return isCorporate(c.ClientType) && !c.Company.IsRestricted },
			then: AuthorizationCancelStrategyCorporateAuthorizationCancel,
		},
		rule[AuthorizationCancelContext, AuthorizationCancelStrategy]{
			when: func(c AuthorizationCancelContext) bool { return isCorporate(c.ClientType) },
			then: AuthorizationCancelStrategyNotAllowed,
		},
	)
}

func SelectAuthorizationRecreateStrategy(ctx AuthorizationRecreateContext) AuthorizationRecreateStrategy {
	return selectAuthorizationRecreate(ctx, ValidateAuthorizationRecreate(ctx), ValidateAuthorizationRecreateFunding(ctx))
}

func selectAuthorizationRecreate(ctx AuthorizationRecreateContext, v, funding ValidationResult) AuthorizationRecreateStrategy {
	return firstMatch(ctx, AuthorizationRecreateStrategyIndividualReauthorize,
		rule[AuthorizationRecreateContext, AuthorizationRecreateStrategy]{
			when: func(AuthorizationRecreateContext) bool { return !v.Valid },
			then: AuthorizationRecreateStrategyValidationFailed,
		},
		rule[AuthorizationRecreateContext, AuthorizationRecreateStrategy]{
			when: func(c AuthorizationRecreateContext) bool { return c.ExistingPayment.Status.IsSettled() },
			then: AuthorizationRecreateStrategyNotAllowed,
		},
		rule[AuthorizationRecreateContext, AuthorizationRecreateStrategy]{
			when: func(c AuthorizationRecreateContext) bool { return shouldRedirectToWaitList(c.Timing, c.WaitList) },
			then: AuthorizationRecreateStrategyWaitListRedirect,
		},
		rule[AuthorizationRecreateContext, AuthorizationRecreateStrategy]{
			when: func(AuthorizationRecreateContext) bool { return !funding.Valid },
			then: AuthorizationRecreateStrategyValidationFailed,
		},
		rule[AuthorizationRecreateContext, AuthorizationRecreateStrategy]{
			when: func(c AuthorizationRecreateContext) bool { return isCorporate(c.ClientType) },
			then: AuthorizationRecreateStrategyCorporateRecreate,
		},
		rule[AuthorizationRecreateContext, AuthorizationRecreateStrategy]{
			when: func(c AuthorizationRecreateContext) bool { return c.ExistingPayment.Status.IsCapturable() },
			then: AuthorizationRecreateStrategyIndividualCancelAndReauthorize,
		},
	)
}

func SelectCaptureStrategy(ctx CaptureContext) CaptureStrategy {
	return selectCapture(ctx, ValidateCapture(ctx))
}

func selectCapture(ctx CaptureContext, v ValidationResult) CaptureStrategy {
	return firstMatch(ctx, CaptureStrategyIndividualCapture,
		rule[CaptureContext, CaptureStrategy]{
			when: func(CaptureContext) bool { return !v.Valid },
			then: CaptureStrategyValidationFailed,
		},
		rule[CaptureContext, CaptureStrategy]{
			when: func(c CaptureContext) bool { return c.Commission != nil && c.Commission.IsSameCompany },
			then: CaptureStrategySameCompanyCommission,
		},
		rule[CaptureContext, CaptureStrategy]{
			when: func(c CaptureContext) bool { return isCorporate(c.ClientType) },
			then: CaptureStrategyCorporateCapture,
		},
	)
}

func SelectTransferStrategy(ctx TransferContext) TransferStrategy {
	return selectTransfer(ctx, ValidateTransfer(ctx))
}

func selectTransfer(ctx TransferContext, v ValidationResult) TransferStrategy {
	return firstMatch(ctx, TransferStrategyValidationFailed,
		rule[TransferContext, TransferStrategy]{
			when: func(c TransferContext) bool { return len(transferPreconditionErrors(c)) > 0 },
			then: TransferStrategyValidationFailed,
		},
		rule[TransferContext, TransferStrategy]{
			when: isSameCompanyTransfer,
			then: TransferStrategyNoTransferRequired,
		},
		rule[TransferContext, TransferStrategy]{
			when: func(TransferContext) bool { return !v.Valid },
			then: TransferStrategyValidationFailed,
		},
		rule[TransferContext, TransferStrategy]{
			when: func(c TransferContext) bool { return c.Interpreter.IsCorporate },
			then: TransferStrategyCorporatePayout,
		},
		rule[TransferContext, TransferStrategy]{
			when: func(c TransferContext) bool { return c.Interpreter.PayoutMethod == PayoutMethodPersonalCard },
			then: TransferStrategyIndividualPersonalCardPayout,
		},
		rule[TransferContext, TransferStrategy]{
			when: func(c TransferContext) bool {
				return c.Interpreter.PayoutMethod == PayoutMethodPlatformAccount &&
					(c.Interpreter.PayoutsEnabled || c.IsSecondAttempt)
			},
			then: TransferStrategyIndividualPlatformAccountTransfer,
		},
	)
}

func isSameCompanyTransfer(c TransferContext) bool {
	return c.Commission != nil && c.Commission.IsSameCompany
}
