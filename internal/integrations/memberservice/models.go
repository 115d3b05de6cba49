package memberservice

// Client модель клиента зала из MemberService
type Client struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	UserActive bool   `json:"user_active"` // активен ли связанный аккаунт пользователя
}

// ContractStatus статус контракта клиента из MemberService
type ContractStatus struct {
	PersonID int64  `json:"person_id"`
	Status   string `json:"status"` // "active", "about_to_expire", "expired", "frozen"
}

// Контракт дает право на запись только в этих статусах
const (
	ContractActive        = "active"
	ContractAboutToExpire = "about_to_expire"
)

// IsQualifying контракт позволяет записываться на тренировки
func (c *ContractStatus) IsQualifying() bool {
	return c.Status == ContractActive || c.Status == ContractAboutToExpire
}

// ErrorResponse модель ошибки от MemberService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
