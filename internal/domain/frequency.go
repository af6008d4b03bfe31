package domain

import "time"

// Frequency is the per-video occurrence count of one distinct word.
// Word uniqueness holds within a single ingestion only; separate
// ingestions of the same external video get separate rows.
type Frequency struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VideoID   uint      `gorm:"not null;index:idx_frequencies_video" json:"video_id"`
	Keyword   string    `gorm:"type:text" json:"keyword"`
	Count     int64     `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Frequency.
func (Frequency) TableName() string {
	return "frequencies"
}
