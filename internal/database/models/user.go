package models

import "github.com/google/uuid"

// UserRole represents the role of a user within their company
type UserRole string

const (
	UserRoleManager  UserRole = "MANAGER"
	UserRoleEmployee UserRole = "EMPLOYEE"
)

// Valid reports whether the role is one of the two known roles.
func (r UserRole) Valid() bool {
	return r == UserRoleManager || r == UserRoleEmployee
}

// UserProfile holds optional contact/position details, embedded into the
// users table as prefixed columns.
type UserProfile struct {
	Phone      string `json:"phone" gorm:"size:20"`
	Position   string `json:"position" gorm:"size:100"`
	Department string `json:"department" gorm:"size:100"`
}

// User represents an employee or manager account. CompanyID is immutable
// after creation; no write path updates it.
type User struct {
	BaseModel
	Email     string      `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,max=255"`
	Password  string      `json:"-" gorm:"not null;size:100"`
	Name      string      `json:"name" gorm:"size:50;not null" validate:"required,max=50"`
	Role      UserRole    `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	CompanyID uuid.UUID   `json:"company_id" gorm:"type:uuid;not null;index"`
	Profile   UserProfile `json:"profile" gorm:"embedded;embeddedPrefix:profile_"`
	IsActive  bool        `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
