package models

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleVendor UserRole = "vendor"
	RoleDriver UserRole = "driver"
)

type User struct {
	ID                 string   `json:"id" gorm:"primaryKey;size:36"`
	Email              string   `json:"email" gorm:"uniqueIndex;not null"`
	Password           string   `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Role               UserRole `json:"role" gorm:"not null"`
	OnboardingComplete bool     `json:"onboardingComplete"`
}

// UserUpdate is a partial update: nil fields are left untouched.
type UserUpdate struct {
	Email              *string   `json:"email" binding:"omitempty,email"`
	Password           *string   `json:"password" binding:"omitempty,min=6"`
	Role               *UserRole `json:"role" binding:"omitempty,oneof=vendor driver"`
	OnboardingComplete *bool     `json:"onboardingComplete"`
}

// Apply merges the supplied fields over an existing user
func (u UserUpdate) Apply(user *User) {
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Password != nil {
		user.Password = *u.Password
	}
	if u.Role != nil {
		user.Role = *u.Role
	}
	if u.OnboardingComplete != nil {
		user.OnboardingComplete = *u.OnboardingComplete
	}
}
