package payment

type ValidationResult struct {
	Valid  bool
	Errors []string
}

func newValidationResult(errors []string) ValidationResult {
	return ValidationResult{Valid: len(errors) == 0, Errors: errors}
}

type OperationContext interface {
	Operation() Operation
}

// ProcessOperation is the uniform input handed to the execution layer for every operation kind.
type ProcessOperation interface {
	Kind() Operation
	StrategyName() string
	IsExecutable() bool
	Validation() ValidationResult
}

type OperationData[S Strategy, C OperationContext] struct {
	Operation        Operation
	Strategy         S
	Context          C
	ValidationResult ValidationResult
}

// Build packages a decision. It carries no business logic.
func Build[S Strategy, C OperationContext](strategy S, ctx C, validation ValidationResult) OperationData[S, C] {
	return OperationData[S, C]{
		Operation:        ctx.Operation(),
		Strategy:         strategy,
		Context:          ctx,
		ValidationResult: validation,
	}
}

func (d OperationData[S, C]) Kind() Operation              { return d.Operation }
func (d OperationData[S, C]) StrategyName() string         { return d.Strategy.String() }
func (d OperationData[S, C]) IsExecutable() bool           { return d.Strategy.IsExecutable() }
func (d OperationData[S, C]) Validation() ValidationResult { return d.ValidationResult }

func DecideAuthorization(ctx AuthorizationContext) OperationData[AuthorizationStrategy, AuthorizationContext] {
	v, funding := ValidateAuthorization(ctx), ValidateAuthorizationFunding(ctx)
	strategy := selectAuthorization(ctx, v, funding)
	return Build(strategy, ctx, reported(strategy == AuthorizationStrategyValidationFailed, v, funding))
}

func DecideAuthorizationCancel(ctx AuthorizationCancelContext) OperationData[AuthorizationCancelStrategy, AuthorizationCancelContext] {
	v := ValidateAuthorizationCancel(ctx)
	return Build(selectAuthorizationCancel(ctx, v), ctx, v)
}

func DecideAuthorizationRecreate(ctx AuthorizationRecreateContext) OperationData[AuthorizationRecreateStrategy, AuthorizationRecreateContext] {
	v, funding := ValidateAuthorizationRecreate(ctx), ValidateAuthorizationRecreateFunding(ctx)
	strategy := selectAuthorizationRecreate(ctx, v, funding)
	return Build(strategy, ctx, reported(strategy == AuthorizationRecreateStrategyValidationFailed, v, funding))
}

// reported is the validation handed on with a decision. Funding errors only surface when they
// caused the failure.
func reported(failed bool, v, funding ValidationResult) ValidationResult {
	if failed && v.Valid {
		return funding
	}
	return v
}

func DecideCapture(ctx CaptureContext) OperationData[CaptureStrategy, CaptureContext] {
	v := ValidateCapture(ctx)
	return Build(selectCapture(ctx, v), ctx, v)
}

func DecideTransfer(ctx TransferContext) OperationData[TransferStrategy, TransferContext] {
	v := ValidateTransfer(ctx)
	return Build(selectTransfer(ctx, v), ctx, v)
}
