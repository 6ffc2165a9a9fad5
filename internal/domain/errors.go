package domain

import "errors"

var (
	// ErrCredentialMissing is returned when no Gemini API key is configured
	ErrCredentialMissing = errors.New("gemini API key not configured")

	// ErrCredentialInvalid is returned when the provider rejects the API key
	ErrCredentialInvalid = errors.New("gemini API key rejected")

	// ErrQuotaExceeded is returned when the provider rate-limits the request
	ErrQuotaExceeded = errors.New("gemini API quota exceeded")

	// ErrBadRequest is returned when the provider rejects the request payload
	ErrBadRequest = errors.New("bad request to gemini API")

	// ErrModelUnavailable is returned when no API surface knows the model
	ErrModelUnavailable = errors.New("gemini model not found")

	// ErrProviderFailure is returned for any other provider-side failure
	ErrProviderFailure = errors.New("gemini API request failed")

	// ErrContentBlocked is returned when generation was blocked by safety filters
	ErrContentBlocked = errors.New("content blocked by gemini safety filters")

	// ErrNoContent is returned when a successful call carries no candidate output
	ErrNoContent = errors.New("no candidates in gemini response")

	// ErrTruncatedResponse is returned when the response JSON is cut short
	ErrTruncatedResponse = errors.New("incomplete JSON in model response")

	// ErrInvalidJSON is returned when the response text does not decode
	ErrInvalidJSON = errors.New("model response is not valid JSON")

	// ErrInvalidShape is returned when decoded data is missing required fields
	ErrInvalidShape = errors.New("model response has invalid structure")

	// ErrPriceUnparseable is returned when an offer's price string yields no number
	ErrPriceUnparseable = errors.New("price string could not be parsed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
