package domain

import "time"

// VideoStatus represents the analysis status of a video record.
// Values include VideoStatusPending, VideoStatusAnalyzed, and VideoStatusUnsupported.
type VideoStatus string

const (
	VideoStatusPending     VideoStatus = "pending"
	VideoStatusAnalyzed    VideoStatus = "analyzed"
	VideoStatusUnsupported VideoStatus = "unsupported"
)

// Video is the aggregate root for one ingested external video and its
// derived analysis rows. The metadata row is created before analysis
// runs, so a video whose analysis reported "unsupported" stays in the
// table with zero children; Status makes that state queryable.
//
// UserID is the single current owner, nullable. Repeated ingestions of
// the same slug intentionally produce independent records.
type Video struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Source      string      `gorm:"type:text;not null" json:"source"`
	YoutubeSlug string      `gorm:"type:text;not null;index:idx_videos_slug" json:"youtube_slug"`
	Author      string      `gorm:"type:text" json:"author"`
	Title       string      `gorm:"type:text" json:"title"`
	Thumbnail   string      `gorm:"type:text" json:"thumbnail"`
	UserID      *uint       `gorm:"index:idx_videos_user" json:"user_id,omitempty"`
	Status      VideoStatus `gorm:"type:text;index:idx_videos_status;default:pending" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TableName returns the database table name for Video.
func (Video) TableName() string {
	return "videos"
}

// VideoIdentity is the projection returned after a successful ingestion.
type VideoIdentity struct {
	ID          uint   `json:"id"`
	YoutubeSlug string `json:"youtube_slug"`
}
