package user

import (
	"errors"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/minbar-media/admin-core/internal/models"
	"github.com/minbar-media/admin-core/internal/pkg/auditlog"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	audit *auditlog.Service
}

func NewService(db *gorm.DB, audit *auditlog.Service) *Service {
	return &Service{db: db, audit: audit}
}

// List returns all users in stable id order plus the total count.
func (s *Service) List() ([]models.UserModel, int64, error) {
	users := make([]models.UserModel, 0)
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, int64(len(users)), nil
}

func (s *Service) GetByID(id uint) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *Service) Create(dto *UserFormDTO) (*models.UserModel, error) {
	if !models.IsValidRole(dto.Role) {
		return nil, errInvalidRole
	}

	isActive := true
	if dto.IsActive != nil {
		isActive = *dto.IsActive
	}

	u := models.UserModel{
		Name:     dto.Name,
		Email:    dto.Email,
		Role:     dto.Role,
		IsActive: isActive,
	}
	if err := s.db.Create(&u).Error; err != nil {
		if isDuplicateEmailError(err) {
			return nil, errDuplicateEmail
		}
		return nil, err
	}
	s.audit.Appendf("users", "User created: %s (ID %d)", u.Email, u.ID)
	return &u, nil
}

func (s *Service) Update(id uint, dto *UserFormDTO) (*models.UserModel, error) {
	if !models.IsValidRole(dto.Role) {
		return nil, errInvalidRole
	}
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":  dto.Name,
		"email": dto.Email,
		"role":  dto.Role,
	}
	if dto.IsActive != nil {
		updates["is_active"] = *dto.IsActive
	}
	if err := s.db.Model(u).Updates(updates).Error; err != nil {
		if isDuplicateEmailError(err) {
			return nil, errDuplicateEmail
		}
		return nil, err
	}
	u.Name, u.Email, u.Role = dto.Name, dto.Email, dto.Role
	if dto.IsActive != nil {
		u.IsActive = *dto.IsActive
	}

	s.audit.Appendf("users", "User updated: %s (ID %d)", u.Email, u.ID)
	return u, nil
}

func (s *Service) Delete(id uint) error {
	u, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&models.UserModel{}, "id = ?", id).Error; err != nil {
		return err
	}
	s.audit.Appendf("users", "User deleted: %s (ID %d)", u.Email, u.ID)
	return nil
}

// SetActive flips is_active. Ban and unban are semantic aliases for an
// update, not a distinct stored state.
func (s *Service) SetActive(id uint, active bool) (*models.UserModel, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(u).Update("is_active", active).Error; err != nil {
		return nil, err
	}
	u.IsActive = active

	action := "banned"
	if active {
		action = "unbanned"
	}
	s.audit.Appendf("users", "User %s: %s (ID %d)", action, u.Email, u.ID)
	return u, nil
}

// isDuplicateEmailError classifies unique-key violations on users.email
// across drivers: GORM's translated error covers SQLite in tests, the MySQL
// error number covers production.
func isDuplicateEmailError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqlDriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
