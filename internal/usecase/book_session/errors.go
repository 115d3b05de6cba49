package book_session

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("book_session: trainer not found")

	// ErrTrainerInactive возвращается, когда тренер или его аккаунт
	// пользователя деактивированы
	ErrTrainerInactive = errors.New("book_session: trainer is inactive")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("book_session: client not found")

	// ErrNoActiveContract возвращается, когда у клиента нет контракта
	// в статусе "active" или "about_to_expire"
	ErrNoActiveContract = errors.New("book_session: client has no active contract")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	// (конец не позже начала, старт в прошлом, превышена длительность)
	ErrInvalidTimeRange = errors.New("book_session: invalid time range")

	// ErrSchedulingConflict возвращается, когда у тренера или клиента уже
	// есть пересекающаяся тренировка
	ErrSchedulingConflict = errors.New("book_session: scheduling conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_session: internal error")
)
