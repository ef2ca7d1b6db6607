package quest

import "errors"

var (
	ErrValidation          = errors.New("invalid request")
	ErrProviderUnavailable = errors.New("AI provider is not available")
	ErrProviderError       = errors.New("AI provider call failed")
	ErrMalformedResponse   = errors.New("AI response is not valid JSON")
	ErrSchemaViolation     = errors.New("AI response does not match the quest schema")
)
