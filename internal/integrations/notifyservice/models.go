package notifyservice

// BookingConfirmation данные письма-подтверждения записи
type BookingConfirmation struct {
	Email       string `json:"email"`
	SessionID   int64  `json:"session_id"`
	Title       string `json:"title"`
	TrainerName string `json:"trainer_name"`
	StartTime   string `json:"start_time"` // ISO 8601
	EndTime     string `json:"end_time"`   // ISO 8601
}
