package auth

import (
	"context"
	"errors"

	"github.com/minbar-media/admin-core/internal/models"
	"github.com/minbar-media/admin-core/internal/pkg/jwt"
	"gorm.io/gorm"
)

type Service struct {
	db       *gorm.DB
	verifier *GoogleVerifier
}

func NewService(db *gorm.DB, verifier *GoogleVerifier) *Service {
	return &Service{db: db, verifier: verifier}
}

// SignIn verifies an externally issued identity token, resolves or creates
// the local user by email, and issues a session token. First sign-in creates
// the account with the default editor role; this is the only implicit
// user-creation path.
func (s *Service) SignIn(ctx context.Context, idToken string) (*models.UserModel, string, error) {
	claims, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, "", err
	}

	u, err := s.resolveUser(claims)
	if err != nil {
		return nil, "", err
	}
	if !u.IsActive {
		return nil, "", errUserBanned
	}

	token, err := jwt.Sign(u.ID, u.Email, jwt.DefaultTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) resolveUser(claims *GoogleClaims) (*models.UserModel, error) {
	var u models.UserModel
	err := s.db.Where("email = ?", claims.Email).First(&u).Error
	if err == nil {
		return &u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	u = models.UserModel{
		Name:     claims.Name,
		Email:    claims.Email,
		Role:     models.RoleEditor,
		IsActive: true,
	}
	if createErr := s.db.Create(&u).Error; createErr != nil {
		// Two first sign-ins can race on the unique email; the loser
		// re-reads the winner's row.
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			if readErr := s.db.Where("email = ?", claims.Email).First(&u).Error; readErr == nil {
				return &u, nil
			}
		}
		return nil, createErr
	}
	return &u, nil
}
