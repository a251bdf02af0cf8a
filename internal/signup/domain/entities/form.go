// Package entities содержит доменные типы формы регистрации.
package entities

// Минимальные требования к полям формы.
const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

// Сообщения об ошибках, отображаемые пользователю.
const (
	MsgUsernameInvalid  = "Username is invalid. Must be more than 2 characters"
	MsgPasswordBreached = "This password has been compromised before. Choose another one!"
	MsgPasswordsNoMatch = "Passwords don't match"
	MsgPasswordEmpty    = "Password must not be empty"
	MsgPasswordTooShort = "Password not long enough. Must at least be 6 characters"
)

// FormFields представляет текущие значения полей формы регистрации.
// Значения изменяются только событиями пользовательского ввода.
type FormFields struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// IsUsernameValid проверяет минимальную длину имени пользователя.
func IsUsernameValid(username string) bool {
	return len(username) >= MinUsernameLength
}

// PasswordCheck - результат синхронной проверки пары пароль/подтверждение.
// В каждый момент времени действует ровно один вариант, выбранный
// фиксированным приоритетом: Empty > NoMatch > TooShort > Valid.
type PasswordCheck int

// Варианты проверки пароля.
const (
	PasswordValid PasswordCheck = iota
	PasswordEmpty
	PasswordNoMatch
	PasswordTooShort
)

// DerivePasswordCheck вычисляет вариант проверки для текущей пары значений.
// Функция чистая и тотальная.
func DerivePasswordCheck(password, confirmPassword string) PasswordCheck {
	switch {
	case len(password) == 0:
		return PasswordEmpty
	case password != confirmPassword:
		return PasswordNoMatch
	case len(password) < MinPasswordLength:
		return PasswordTooShort
	default:
		return PasswordValid
	}
}

// Message возвращает отображаемое пользователю сообщение для варианта.
// Для PasswordValid сообщение пустое.
func (c PasswordCheck) Message() string {
	switch c {
	case PasswordEmpty:
		return MsgPasswordEmpty
	case PasswordNoMatch:
		return MsgPasswordsNoMatch
	case PasswordTooShort:
		return MsgPasswordTooShort
	default:
		return ""
	}
}

// String возвращает имя варианта для логирования.
func (c PasswordCheck) String() string {
	switch c {
	case PasswordValid:
		return "valid"
	case PasswordEmpty:
		return "empty"
	case PasswordNoMatch:
		return "no_match"
	case PasswordTooShort:
		return "too_short"
	default:
		return "unknown"
	}
}

// AvailabilityOutcome - результат проверки доступности имени пользователя.
// Err равен nil при успешной проверке; Available действителен только
// при nil Err.
type AvailabilityOutcome struct {
	Available bool
	Err       *CheckError
}

// ValidationSnapshot - выходные сигналы конвейера валидации.
// Производится детерминированно из последних известных входов
// и никогда не изменяется независимо.
type ValidationSnapshot struct {
	IsFormValid  bool
	ErrorMessage string
}

// AuthState - состояние аутентификации сеанса. Конвейер валидации его
// не изменяет: переход в Authenticating не выполняется ни одной операцией
// конвейера.
type AuthState int

// Состояния аутентификации.
const (
	Unauthenticated AuthState = iota
	Authenticating
	Authenticated
)

// String возвращает имя состояния для логирования.
func (s AuthState) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}
