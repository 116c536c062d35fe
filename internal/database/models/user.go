package models

// AuthProvider identifies how an account authenticates
type AuthProvider string

const (
	AuthProviderLocal AuthProvider = "local"
)

// User represents an authenticated account. Accounts created through an OAuth
// provider carry an empty PasswordHash and the provider key they linked with.
type User struct {
	BaseModel
	Email         string       `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash  string       `json:"-" gorm:"size:255"`
	Name          string       `json:"name" gorm:"size:100" validate:"max=100"`
	Provider      AuthProvider `json:"provider" gorm:"type:varchar(50);not null;default:'local'"`
	EmailVerified bool         `json:"email_verified" gorm:"not null;default:false"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
