package content

import (
	"errors"

	"github.com/minbar-media/admin-core/internal/models"
)

var (
	errContentNotFound = errors.New("content not found")
	errInvalidType     = errors.New("invalid content type")
	errArtistMissing   = errors.New("artist does not exist")
)

// ContentFormDTO carries the multipart form fields shared by create and
// update. The media file travels separately as the "file" form file.
type ContentFormDTO struct {
	Title    string `form:"title"     binding:"required"`
	Type     string `form:"type"      binding:"required"`
	ArtistID uint   `form:"artist_id" binding:"required"`
}

// BatchDeleteDTO is the body of POST /contents/batch-delete.
type BatchDeleteDTO struct {
	IDs []uint `json:"ids"`
}

// ContentRow is a content item joined with its artist's name for list and
// detail responses.
type ContentRow struct {
	models.ContentModel
	ArtistName string `json:"artist_name"`
}
