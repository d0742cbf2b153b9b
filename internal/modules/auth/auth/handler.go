package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/minbar-media/admin-core/internal/middleware"
	"github.com/minbar-media/admin-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/users")

	g.POST("/auth", h.signIn)
	g.GET("/profile", authMW, h.profile)
}

// POST /users/auth — Authorization header carries the Google ID token.
func (h *Handler) signIn(c *gin.Context) {
	idToken := middleware.NormalizeToken(c.GetHeader("Authorization"))
	if idToken == "" {
		response.UnauthorizedMsg(c, "no token provided")
		return
	}

	u, token, err := h.svc.SignIn(c.Request.Context(), idToken)
	if err != nil {
		switch {
		case errors.Is(err, errTokenInvalid), errors.Is(err, errMissingClaims):
			response.UnauthorizedMsg(c, "invalid identity token")
		case errors.Is(err, errUserBanned):
			response.Forbidden(c)
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, identityResponse{
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
		Token: token,
	})
}

// GET /users/profile — resolved identity of the current session.
func (h *Handler) profile(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	response.OK(c, identityResponse{
		Email: identity.Email,
		Name:  identity.Name,
		Role:  identity.Role,
	})
}
