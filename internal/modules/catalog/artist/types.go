package artist

import "errors"

var errArtistNotFound = errors.New("artist not found")

// ArtistFormDTO carries the multipart form fields shared by create and
// update. The image file travels separately as the "image" form file.
type ArtistFormDTO struct {
	Name  string `form:"name" binding:"required"`
	Genre string `form:"genre"`
	Bio   string `form:"bio"`
}

// BatchDeleteDTO is the body of POST /artists/batch-delete.
type BatchDeleteDTO struct {
	IDs []uint `json:"ids"`
}
