package domain

import "time"

// Script is one timestamped transcript segment of a video with the
// importance score the inference engine assigned to it. Rows are
// written once during ingestion and never updated.
type Script struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	VideoID         uint      `gorm:"not null;index:idx_scripts_video" json:"video_id"`
	Timestamp       float64   `json:"timestamp"`
	Content         string    `gorm:"type:text" json:"content"`
	ImportanceScore float64   `json:"importance_score"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName returns the database table name for Script.
func (Script) TableName() string {
	return "scripts"
}
