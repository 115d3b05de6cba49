package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда тренировка не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	// к чужой тренировке
	ErrAccessDenied = errors.New("access denied")

	// ErrPolicyDenied возвращается на любую попытку клиента изменить или
	// отменить тренировку через self-service. Это намеренное бизнес-правило,
	// а не проверка владения: изменения проходят только через персонал.
	ErrPolicyDenied = errors.New("self-service modification is not allowed, contact the front desk")

	// ErrCannotCancel возвращается, когда тренировка уже завершена и не
	// может быть отменена
	ErrCannotCancel = errors.New("session cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidPeriod возвращается при неизвестном периоде расписания
	ErrInvalidPeriod = errors.New("invalid schedule period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
