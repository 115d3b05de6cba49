package domain

// Role is the coarse capability class of a caller
type Role string

const (
	// RoleStaff front-desk and administrator accounts; full scheduling rights
	RoleStaff Role = "staff"

	// RoleClient gym members on the self-service path; creation only,
	// always scoped to their own sessions
	RoleClient Role = "client"
)

// Caller is the capability object resolved once per request by the API
// layer and passed explicitly into services and use cases. It is the only
// source of "who is asking" below the HTTP layer.
type Caller struct {
	UserID int64
	Role   Role
}

// IsStaff reports whether the caller has staff rights
func (c Caller) IsStaff() bool {
	return c.Role == RoleStaff
}

// IsClient reports whether the caller is a self-service client
func (c Caller) IsClient() bool {
	return c.Role == RoleClient
}
