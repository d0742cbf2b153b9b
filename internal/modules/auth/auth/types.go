package auth

import "errors"

var (
	errTokenInvalid  = errors.New("identity token invalid")
	errMissingClaims = errors.New("identity token missing required claims")
	errUserBanned    = errors.New("account is deactivated")
)

// identityResponse is the resolved identity returned by the sign-in
// endpoint. The session token authenticates subsequent API calls.
type identityResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Token string `json:"token,omitempty"`
}
