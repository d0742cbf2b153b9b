package models

import "time"

// LogModel is one entry of the append-only audit trail. Rows are created as a
// side effect of mutations and never updated or deleted by normal flows.
type LogModel struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	Table     string    `json:"table_name" gorm:"column:table_name;not null;index"`
	Log       string    `json:"log"        gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (LogModel) TableName() string { return "logs" }
