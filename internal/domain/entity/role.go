// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleBuyer indicates a buyer account.
	RoleBuyer Role = "buyer"
	// RoleSeller indicates a seller account.
	RoleSeller Role = "seller"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin indicates a super administrator account.
	RoleSuperAdmin Role = "superadmin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// Sex represents the declared sex of an account holder.
type Sex string

const (
	// SexMale is the male option.
	SexMale Sex = "male"
	// SexFemale is the female option.
	SexFemale Sex = "female"
)

// IsValid checks if the Sex is a valid value.
func (s Sex) IsValid() bool {
	return s == SexMale || s == SexFemale
}
