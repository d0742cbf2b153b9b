package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type track struct {
	ID    uint `gorm:"primaryKey"`
	Title string
	Genre string
}

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&track{}))
	require.NoError(t, db.Create(&[]track{
		{Title: "Morning Light", Genre: "nasheed"},
		{Title: "Evening Talk", Genre: "podcast"},
		{Title: "LIGHTHOUSE", Genre: "podcast"},
	}).Error)
	return db
}

func query(t *testing.T, db *gorm.DB, p Predicate) []track {
	var rows []track
	require.NoError(t, p.Apply(db.Model(&track{})).Find(&rows).Error)
	return rows
}

func TestNoFilter(t *testing.T) {
	db := setupDB(t)
	assert.Len(t, query(t, db, NoFilter()), 3)
}

func TestTextMatch_CaseInsensitive(t *testing.T) {
	db := setupDB(t)
	rows := query(t, db, TextMatch("light", "title"))
	assert.Len(t, rows, 2)
}

func TestTextMatch_EmptyTermMatchesAll(t *testing.T) {
	db := setupDB(t)
	assert.Len(t, query(t, db, TextMatch("  ", "title")), 3)
}

func TestTextMatch_MultipleColumns(t *testing.T) {
	db := setupDB(t)
	rows := query(t, db, TextMatch("podcast", "title", "genre"))
	assert.Len(t, rows, 2)
}

func TestExactMatch(t *testing.T) {
	db := setupDB(t)
	rows := query(t, db, ExactMatch("genre", "podcast"))
	assert.Len(t, rows, 2)

	assert.Len(t, query(t, db, ExactMatch("genre", "")), 3)
}

func TestAnd_NarrowsProgressively(t *testing.T) {
	db := setupDB(t)
	rows := query(t, db, And(
		TextMatch("light", "title"),
		ExactMatch("genre", "podcast"),
	))
	require.Len(t, rows, 1)
	assert.Equal(t, "LIGHTHOUSE", rows[0].Title)
}
