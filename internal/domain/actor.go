package domain

// Role роль пользователя, выполняющего действие
type Role string

const (
	RoleGuest Role = "guest"
	RoleStaff Role = "staff"
)

// Actor пользователь, от имени которого выполняется операция
type Actor struct {
	UserID int64
	Role   Role
}

// IsStaff возвращает true для сотрудников ресторана
func (a Actor) IsStaff() bool {
	return a.Role == RoleStaff
}

// CanAccess владелец видит свою бронь, сотрудник - любую
func (a Actor) CanAccess(r *Reservation) bool {
	return a.IsStaff() || r.UserID == a.UserID
}
