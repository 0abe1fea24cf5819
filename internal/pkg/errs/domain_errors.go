package errs

import "errors"

// Domain-specific sentinel errors shared across layers
var (
	// Classification markers
	ErrConfiguration = errors.New("configuration error")

	// Rate card errors
	ErrRateLoadFailed = errors.New("rate card load failed")

	// Quote errors
	ErrQuoteFailed         = errors.New("quote failed")
	ErrInvalidQuoteRequest = errors.New("invalid quote request")
)
