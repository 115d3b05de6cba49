package get_available_slots

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда запрошенный тренер не найден
	ErrTrainerNotFound = errors.New("get_available_slots: trainer not found")

	// ErrTrainerInactive возвращается, когда запрошенный тренер деактивирован
	ErrTrainerInactive = errors.New("get_available_slots: trainer is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
