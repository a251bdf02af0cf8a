package entities

import "fmt"

// CheckErrorKind классифицирует ошибки удаленных проверок.
type CheckErrorKind int

// Виды ошибок удаленных проверок.
const (
	// KindInvalidRequest - некорректный URL запроса; сеть не использовалась.
	KindInvalidRequest CheckErrorKind = iota
	// KindTransport - сбой соединения, DNS, TLS или таймаут запроса.
	KindTransport
	// KindInvalidResponse - не-2xx ответ без структурированной причины.
	KindInvalidResponse
	// KindServerValidation - HTTP 400 с причиной, указанной сервером.
	KindServerValidation
	// KindDecoding - тело ответа не соответствует ожидаемой форме.
	KindDecoding
)

// String возвращает имя вида ошибки для логирования.
func (k CheckErrorKind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindTransport:
		return "transport"
	case KindInvalidResponse:
		return "invalid_response"
	case KindServerValidation:
		return "server_validation"
	case KindDecoding:
		return "decoding"
	default:
		return "unknown"
	}
}

// description - отображаемое описание вида ошибки.
func (k CheckErrorKind) description() string {
	switch k {
	case KindInvalidRequest:
		return "Invalid request"
	case KindInvalidResponse:
		return "Invalid response from server"
	case KindDecoding:
		return "Unexpected response from server"
	default:
		return ""
	}
}

// CheckError - классифицированная ошибка удаленной проверки.
type CheckError struct {
	Kind   CheckErrorKind
	Reason string
	Err    error
}

// Error реализует интерфейс error.
func (e *CheckError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

// Unwrap возвращает исходную ошибку.
func (e *CheckError) Unwrap() error {
	return e.Err
}

// Message возвращает отображаемое пользователю сообщение: причину сервера
// для KindServerValidation, пустую строку для KindTransport и описание
// вида в остальных случаях.
func (e *CheckError) Message() string {
	switch e.Kind {
	case KindServerValidation:
		return e.Reason
	case KindTransport:
		return ""
	default:
		return e.Kind.description()
	}
}

// NewCheckError создает классифицированную ошибку проверки.
func NewCheckError(kind CheckErrorKind, err error) *CheckError {
	return &CheckError{Kind: kind, Err: err}
}

// NewServerValidationError создает ошибку валидации с причиной сервера.
func NewServerValidationError(reason string) *CheckError {
	return &CheckError{Kind: KindServerValidation, Reason: reason}
}
