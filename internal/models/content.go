package models

// ContentType classifies a catalog item.
const (
	ContentTypePodcast = "podcast"
	ContentTypeNasheed = "nasheed"
	ContentTypePoetry  = "poetry"
)

// ContentTypes is the closed set of accepted content types.
var ContentTypes = []string{ContentTypePodcast, ContentTypeNasheed, ContentTypePoetry}

// IsValidContentType reports whether t belongs to the accepted set.
func IsValidContentType(t string) bool {
	for _, v := range ContentTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ContentModel represents a published catalog item (audio or text file).
// ArtistID references artists.id; the reference is validated on write but not
// enforced with a database constraint, so deleting an artist may leave
// dangling references.
type ContentModel struct {
	Base
	Title    string `json:"title"     gorm:"not null;index"`
	Type     string `json:"type"      gorm:"not null;index"`
	FileURL  string `json:"file_url"  gorm:"not null"`
	ArtistID uint   `json:"artist_id" gorm:"not null;index"`
}

func (ContentModel) TableName() string { return "contents" }
