package notifyservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifyservice client: internal error")

	// ErrSendFailed возвращается, когда сервис уведомлений отклонил запрос.
	// Вызывающая сторона обязана логировать эту ошибку и НЕ проваливать
	// операцию бронирования - уведомления best-effort.
	ErrSendFailed = errors.New("notifyservice client: failed to send notification")
)
