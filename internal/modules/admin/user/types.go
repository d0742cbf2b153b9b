package user

import "errors"

var (
	errUserNotFound   = errors.New("user not found")
	errInvalidRole    = errors.New("invalid role")
	errDuplicateEmail = errors.New("email already in use")
)

// UserFormDTO carries the JSON body shared by create and update. IsActive is
// a pointer so an explicit false survives binding; absent means true on
// create and retained on update.
type UserFormDTO struct {
	Name     string `json:"name"      binding:"required"`
	Email    string `json:"email"     binding:"required,email"`
	Role     string `json:"role"      binding:"required"`
	IsActive *bool  `json:"is_active"`
}
