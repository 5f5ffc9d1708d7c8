package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "SuperAdmin" // Top-level approver - full access
	RoleAdmin      Role = "Admin"      // Can approve/rectify attendance and leave
	RoleEmployee   Role = "Employee"   // Regular employee
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Department   *string
	Designation  *string
	Phone        *string
	Address      *string
	CreatedBy    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor identifies the authenticated caller of a service operation. Handlers
// build it from JWT claims; services never read claims themselves.
type Actor struct {
	UserID string
	Role   Role
}

// IsSuperAdmin checks if the actor is the top-level approver
func (a Actor) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

// IsApprover checks if the actor can approve and rectify attendance or leave
func (a Actor) IsApprover() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}

// WorkingRoles are the roles the scheduler jobs cover: everyone below the
// top administrative role.
func WorkingRoles() []Role {
	return []Role{RoleEmployee, RoleAdmin}
}

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}
