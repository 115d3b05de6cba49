package trainerservice

// Trainer модель тренера из TrainerService
type Trainer struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Active     bool   `json:"active"`
	UserActive bool   `json:"user_active"` // активен ли связанный аккаунт пользователя
}

// IsBookable тренер доступен для записи: активен сам и активен его аккаунт
func (t *Trainer) IsBookable() bool {
	return t.Active && t.UserActive
}

// ErrorResponse модель ошибки от TrainerService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
