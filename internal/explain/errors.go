package explain

import "errors"

var (
	// ErrDisabled is returned when no provider is configured.
	ErrDisabled = errors.New("explanations are disabled")
	// ErrEmptyExplanation is returned when the provider answers with no text.
	ErrEmptyExplanation = errors.New("provider returned an empty explanation")
)

// User-facing messages shown in place of an explanation.
const (
	// MessageUnavailable is shown when no explanation could be produced.
	MessageUnavailable = "تعذر الحصول على تفسير. الرجاء المحاولة مرة أخرى."
	// MessageNetworkError is shown when the request itself failed.
	MessageNetworkError = "حدث خطأ. الرجاء التحقق من اتصالك بالإنترنت."
)
