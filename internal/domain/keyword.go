package domain

import "time"

// Keyword is one timestamped keyword occurrence with its relevance
// score. The engine indexes these by an arbitrary key that carries no
// ordering guarantee, so rows are keyed by a surrogate id and the
// engine index is discarded.
type Keyword struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VideoID   uint      `gorm:"not null;index:idx_keywords_video" json:"video_id"`
	Timestamp float64   `json:"timestamp"`
	Keyword   string    `gorm:"type:text" json:"keyword"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Keyword.
func (Keyword) TableName() string {
	return "keywords"
}
