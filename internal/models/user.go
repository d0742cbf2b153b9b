package models

// User roles. The set is closed; anything else is rejected at the service
// layer before it reaches the database.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// IsValidRole reports whether role belongs to the accepted set.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}

// UserModel represents an admin panel account. Email is the stable join key
// with the external identity provider: repeated sign-ins resolve to the same
// row.
type UserModel struct {
	Base
	Name     string `json:"name"`
	Email    string `json:"email"     gorm:"uniqueIndex;not null"`
	Role     string `json:"role"      gorm:"not null;default:'editor'"`
	// No column default: a zero-value false must persist as written,
	// so activation defaults live in the service layer instead.
	IsActive bool `json:"is_active" gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }
