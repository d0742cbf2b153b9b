package content

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

func (s *Service) joined() *gorm.DB {
	return s.db.Model(&models.ContentModel{}).
		Select("contents.*, artists.name AS artist_name").
		Joins("LEFT JOIN artists ON artists.id = contents.artist_id")
}

// List returns one page of contents newest-first plus the total matching
// count. Search matches the title case-insensitively; type is an exact
// filter; empty filters match all rows. Rows carry the joined artist name.
func (s *Service) List(q pagination.Query, search, typ string) ([]ContentRow, int64, error) {
	pred := filter.And(
		filter.TextMatch(search, "contents.title"),
		filter.ExactMatch("contents.type", typ),
	)
	tx := pred.Apply(s.joined()).Order("contents.created_at DESC, contents.id DESC")

	var rows []ContentRow
	total, err := pagination.Paginate(tx, q, &rows)
	return rows, total, err
}

func (s *Service) GetByID(id uint) (*ContentRow, error) {
	var row ContentRow
	err := s.joined().Where("contents.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errContentNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Create validates the type and artist reference, persists the uploaded
// file, and inserts the row.
func (s *Service) Create(dto *ContentFormDTO, file *multipart.FileHeader) (*models.ContentModel, error) {
	if err := s.validate(dto); err != nil {
		return nil, err
	}

	url, err := s.store.Save(file)
	if err != nil {
		return nil, err
	}

	item := models.ContentModel{
		Title:    dto.Title,
		Type:     dto.Type,
		FileURL:  url,
		ArtistID: dto.ArtistID,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	s.audit.Appendf("contents", "Created: %q by artist %d", item.Title, item.ArtistID)
	return &item, nil
}

// Update rewrites the content's fields. When a new file is supplied the old
// one is unlinked from disk; otherwise the previous reference is retained.
func (s *Service) Update(id uint, dto *ContentFormDTO, file *multipart.FileHeader) (*models.ContentModel, error) {
	var item models.ContentModel
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errContentNotFound
		}
		return nil, err
	}
	if err := s.validate(dto); err != nil {
		return nil, err
	}

	fileURL := item.FileURL
	if file != nil {
		url, saveErr := s.store.Save(file)
		if saveErr != nil {
			return nil, saveErr
		}
		if item.FileURL != "" {
			_ = s.store.Remove(item.FileURL)
		}
		fileURL = url
	}

	updates := map[string]interface{}{
		"title":     dto.Title,
		"type":      dto.Type,
		"artist_id": dto.ArtistID,
		"file_url":  fileURL,
	}
	if err := s.db.Model(&item).Updates(updates).Error; err != nil {
		return nil, err
	}
	item.Title, item.Type, item.ArtistID, item.FileURL = dto.Title, dto.Type, dto.ArtistID, fileURL

	s.audit.Appendf("contents", "Updated ID %d: %q", item.ID, item.Title)
	return &item, nil
}

// Delete removes the content and best-effort removes its file.
func (s *Service) Delete(id uint) error {
	var item models.ContentModel
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errContentNotFound
		}
		return err
	}

	if item.FileURL != "" {
		_ = s.store.Remove(item.FileURL)
	}
	if err := s.db.Delete(&models.ContentModel{}, "id = ?", id).Error; err != nil {
		return err
	}
	s.audit.Appendf("contents", "Deleted ID %d: %q", item.ID, item.Title)
	return nil
}

// BatchDelete removes all matching contents, best-effort removes their
// files, and records a single audit entry summarizing the count.
func (s *Service) BatchDelete(ids []uint) (int64, error) {
	var victims []models.ContentModel
	if err := s.db.Where("id IN ?", ids).Find(&victims).Error; err != nil {
		return 0, err
	}
	for _, item := range victims {
		if item.FileURL != "" {
			_ = s.store.Remove(item.FileURL)
		}
	}

	res := s.db.Delete(&models.ContentModel{}, "id IN ?", ids)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		s.audit.Appendf("contents", "Batch deleted %d content(s)", res.RowsAffected)
	}
	return res.RowsAffected, nil
}

func (s *Service) validate(dto *ContentFormDTO) error {
	if !models.IsValidContentType(dto.Type) {
		return errInvalidType
	}
	var count int64
	if err := s.db.Model(&models.ArtistModel{}).Where("id = ?", dto.ArtistID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errArtistMissing
	}
	return nil
}
