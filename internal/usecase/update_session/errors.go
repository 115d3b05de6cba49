package update_session

import "errors"

var (
	// ErrPolicyDenied возвращается любому клиенту: self-service правка
	// запрещена безусловно, изменения только через персонал
	ErrPolicyDenied = errors.New("update_session: self-service modification is not allowed, contact the front desk")

	// ErrSessionNotFound возвращается, когда тренировка не найдена
	ErrSessionNotFound = errors.New("update_session: session not found")

	// ErrSessionNotModifiable возвращается, когда тренировка завершена или
	// отменена и правке не подлежит
	ErrSessionNotModifiable = errors.New("update_session: session can no longer be modified")

	// ErrTrainerNotFound возвращается, когда новый тренер не найден
	ErrTrainerNotFound = errors.New("update_session: trainer not found")

	// ErrTrainerInactive возвращается, когда новый тренер деактивирован
	ErrTrainerInactive = errors.New("update_session: trainer is inactive")

	// ErrClientNotFound возвращается, когда новый клиент не найден
	ErrClientNotFound = errors.New("update_session: client not found")

	// ErrNoActiveContract возвращается, когда у нового клиента нет контракта
	// в статусе "active" или "about_to_expire"
	ErrNoActiveContract = errors.New("update_session: client has no active contract")

	// ErrInvalidTimeRange возвращается при некорректном новом диапазоне
	ErrInvalidTimeRange = errors.New("update_session: invalid time range")

	// ErrSchedulingConflict возвращается, когда новый диапазон пересекается
	// с другой тренировкой тренера или клиента
	ErrSchedulingConflict = errors.New("update_session: scheduling conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_session: internal error")
)
