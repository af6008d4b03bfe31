package service

import (
	"context"

	"github.com/castela0119/Elice-Team5/internal/domain"
	"github.com/castela0119/Elice-Team5/internal/repository"
)

// LibraryService covers ownership of video records and read queries.
// It never touches ingestion state.
type LibraryService struct {
	videoRepo     *repository.VideoRepository
	keywordRepo   *repository.KeywordRepository
	frequencyRepo *repository.FrequencyRepository
}

// NewLibraryService creates a new library service.
func NewLibraryService(
	videoRepo *repository.VideoRepository,
	keywordRepo *repository.KeywordRepository,
	frequencyRepo *repository.FrequencyRepository,
) *LibraryService {
	return &LibraryService{
		videoRepo:     videoRepo,
		keywordRepo:   keywordRepo,
		frequencyRepo: frequencyRepo,
	}
}

// Attach sets userID as the single owner of the video. The overwrite
// is unconditional: there is no prior-ownership check, and concurrent
// attach calls resolve last-write-wins with no error to the loser.
// Returns domain.ErrNotFound if the video does not exist.
func (s *LibraryService) Attach(ctx context.Context, videoID, userID uint) error {
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return err
	}
	return s.videoRepo.SetOwner(ctx, videoID, &userID)
}

// Detach clears the owner of the video regardless of who holds it.
// Idempotent on already-unowned videos. Returns domain.ErrNotFound if
// the video does not exist.
func (s *LibraryService) Detach(ctx context.Context, videoID uint) error {
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return err
	}
	return s.videoRepo.SetOwner(ctx, videoID, nil)
}

// ListOwned returns the videos currently owned by userID.
func (s *LibraryService) ListOwned(ctx context.Context, userID uint) ([]domain.Video, error) {
	return s.videoRepo.ListByOwner(ctx, userID)
}

// GetByID returns a video by id. Publicly readable; no ownership check.
func (s *LibraryService) GetByID(ctx context.Context, videoID uint) (*domain.Video, error) {
	return s.videoRepo.GetByID(ctx, videoID)
}

// Keywords returns the keyword spots of a video.
// Returns domain.ErrNotFound if the video does not exist.
func (s *LibraryService) Keywords(ctx context.Context, videoID uint) ([]domain.Keyword, error) {
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	return s.keywordRepo.ListByVideoID(ctx, videoID)
}

// Frequencies returns the word-frequency rows of a video.
// Returns domain.ErrNotFound if the video does not exist.
func (s *LibraryService) Frequencies(ctx context.Context, videoID uint) ([]domain.Frequency, error) {
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	return s.frequencyRepo.ListByVideoID(ctx, videoID)
}

// Slug returns only the external identifier of a video.
// Returns domain.ErrNotFound if the video does not exist.
func (s *LibraryService) Slug(ctx context.Context, videoID uint) (string, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return "", err
	}
	return video.YoutubeSlug, nil
}
