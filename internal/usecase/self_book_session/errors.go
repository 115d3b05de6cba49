package self_book_session

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("self_book_session: trainer not found")

	// ErrTrainerInactive возвращается, когда тренер или его аккаунт
	// пользователя деактивированы
	ErrTrainerInactive = errors.New("self_book_session: trainer is inactive")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("self_book_session: client not found")

	// ErrNoActiveContract возвращается, когда у клиента нет контракта
	// в статусе "active" или "about_to_expire"
	ErrNoActiveContract = errors.New("self_book_session: client has no active contract")

	// ErrInvalidTimeRange возвращается, когда запрос нарушает правила
	// self-service: длительность не ровно час, старт не на границе часа,
	// вне рабочих часов, раньше чем через 2 часа или дальше чем за 30 дней
	ErrInvalidTimeRange = errors.New("self_book_session: invalid time range")

	// ErrSchedulingConflict возвращается, когда у тренера или клиента уже
	// есть пересекающаяся тренировка
	ErrSchedulingConflict = errors.New("self_book_session: scheduling conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("self_book_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("self_book_session: internal error")
)
