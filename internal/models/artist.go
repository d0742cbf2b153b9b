package models

// ArtistModel represents a catalog artist.
type ArtistModel struct {
	Base
	Name     string  `json:"name"      gorm:"not null;index"`
	Genre    string  `json:"genre"     gorm:"index"`
	Bio      string  `json:"bio"       gorm:"type:text"`
	ImageURL *string `json:"image_url"`
}

func (ArtistModel) TableName() string { return "artists" }
