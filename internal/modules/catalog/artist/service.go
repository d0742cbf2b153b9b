package artist

import (
	"errors"
	"mime/multipart"

	"github.com/minbar-media/admin-core/internal/models"
	"github.com/minbar-media/admin-core/internal/modules/storage/upload"
	"github.com/minbar-media/admin-core/internal/pkg/auditlog"
	"github.com/minbar-media/admin-core/internal/pkg/filter"
	"github.com/minbar-media/admin-core/internal/pkg/pagination"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	store *upload.Store
	audit *auditlog.Service
}

func NewService(db *gorm.DB, store *upload.Store, audit *auditlog.Service) *Service {
	return &Service{db: db, store: store, audit: audit}
}

// List returns one page of artists ordered by name plus the total matching
// count. Search matches name and bio case-insensitively; genre is an exact
// filter; empty filters match all rows.
func (s *Service) List(q pagination.Query, search, genre string) ([]models.ArtistModel, int64, error) {
	pred := filter.And(
		filter.TextMatch(search, "name", "bio"),
		filter.ExactMatch("genre", genre),
	)
	tx := pred.Apply(s.db.Model(&models.ArtistModel{})).Order("name ASC")

	var items []models.ArtistModel
	total, err := pagination.Paginate(tx, q, &items)
	return items, total, err
}

func (s *Service) GetByID(id uint) (*models.ArtistModel, error) {
	var a models.ArtistModel
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Create inserts an artist, optionally persisting an uploaded image first.
func (s *Service) Create(dto *ArtistFormDTO, image *multipart.FileHeader) (*models.ArtistModel, error) {
	a := models.ArtistModel{Name: dto.Name, Genre: dto.Genre, Bio: dto.Bio}

	if image != nil {
		url, err := s.store.Save(image)
		if err != nil {
			return nil, err
		}
		a.ImageURL = &url
	}

	if err := s.db.Create(&a).Error; err != nil {
		return nil, err
	}
	s.audit.Appendf("artists", "Artist created: %s (ID %d)", a.Name, a.ID)
	return &a, nil
}

// Update rewrites the artist's fields. When no new image is supplied the
// previous reference is retained unchanged; when one is, the reference is
// replaced but the old file stays on disk.
func (s *Service) Update(id uint, dto *ArtistFormDTO, image *multipart.FileHeader) (*models.ArtistModel, error) {
	a, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":  dto.Name,
		"genre": dto.Genre,
		"bio":   dto.Bio,
	}
	if image != nil {
		url, saveErr := s.store.Save(image)
		if saveErr != nil {
			return nil, saveErr
		}
		updates["image_url"] = url
		a.ImageURL = &url
	}

	if err := s.db.Model(a).Updates(updates).Error; err != nil {
		return nil, err
	}
	a.Name, a.Genre, a.Bio = dto.Name, dto.Genre, dto.Bio

	s.audit.Appendf("artists", "Artist edited: %s (ID %d)", a.Name, a.ID)
	return a, nil
}

// Delete removes the artist and best-effort removes its image file.
func (s *Service) Delete(id uint) error {
	a, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if a.ImageURL != nil {
		_ = s.store.Remove(*a.ImageURL)
	}
	if err := s.db.Delete(&models.ArtistModel{}, "id = ?", id).Error; err != nil {
		return err
	}
	s.audit.Appendf("artists", "Artist deleted: %s (ID %d)", a.Name, a.ID)
	return nil
}

// BatchDelete removes all matching artists, best-effort removes their image
// files, and records a single audit entry summarizing the count.
func (s *Service) BatchDelete(ids []uint) (int64, error) {
	var victims []models.ArtistModel
	if err := s.db.Where("id IN ?", ids).Find(&victims).Error; err != nil {
		return 0, err
	}
	for _, a := range victims {
		if a.ImageURL != nil {
			_ = s.store.Remove(*a.ImageURL)
		}
	}

	res := s.db.Delete(&models.ArtistModel{}, "id IN ?", ids)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		s.audit.Appendf("artists", "Deleted %d artist(s)", res.RowsAffected)
	}
	return res.RowsAffected, nil
}
