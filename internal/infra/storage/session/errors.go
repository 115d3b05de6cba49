package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда тренировка не найдена
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.repository: failed to scan row")

	// ErrEmptyOverlapQuery возвращается, когда в conflict-скане не указан
	// ни тренер, ни клиент
	ErrEmptyOverlapQuery = errors.New("session.repository: overlap query needs trainer or client")
)
