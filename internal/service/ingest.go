package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/castela0119/Elice-Team5/internal/domain"
	"github.com/castela0119/Elice-Team5/internal/inference"
	"github.com/castela0119/Elice-Team5/internal/logger"
	"github.com/castela0119/Elice-Team5/internal/repository"
)

// youtubeURLPrefix derives the canonical source locator from a slug.
const youtubeURLPrefix = "https://www.youtube.com/watch?v="

// IngestService orchestrates the ingestion pipeline: resolve locator,
// fetch metadata, persist the video record, run analysis, decompose
// the result, and persist the derived rows.
//
// The video row is written before analysis runs and is not rolled back
// when analysis reports "unsupported"; the status column distinguishes
// that outcome from a crash mid-pipeline. No transaction spans the
// video create and the child creates.
type IngestService struct {
	videoRepo     *repository.VideoRepository
	scriptRepo    *repository.ScriptRepository
	keywordRepo   *repository.KeywordRepository
	frequencyRepo *repository.FrequencyRepository
	engine        inference.Engine
	thumbnails    *ThumbnailService
	logger        *logger.Logger
}

// NewIngestService creates a new ingest service.
// Parameters:
//   - videoRepo, scriptRepo, keywordRepo, frequencyRepo: persistence ports.
//   - engine: content-analysis engine client.
//   - thumbnails: optional thumbnail mirror; nil disables mirroring.
//   - log: base logger.
// Returns:
//   - *IngestService: initialized service.
func NewIngestService(
	videoRepo *repository.VideoRepository,
	scriptRepo *repository.ScriptRepository,
	keywordRepo *repository.KeywordRepository,
	frequencyRepo *repository.FrequencyRepository,
	engine inference.Engine,
	thumbnails *ThumbnailService,
	log *logger.Logger,
) *IngestService {
	return &IngestService{
		videoRepo:     videoRepo,
		scriptRepo:    scriptRepo,
		keywordRepo:   keywordRepo,
		frequencyRepo: frequencyRepo,
		engine:        engine,
		thumbnails:    thumbnails,
		logger:        log,
	}
}

// log returns a logger from context if available, otherwise the service logger
func (s *IngestService) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l
	}
	return s.logger
}

// Ingest runs the full pipeline for one external video.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - slug: external video identifier; the source URL is derived from it.
// Returns:
//   - *domain.VideoIdentity: id and slug of the created video on success.
//   - error: domain.ErrUnsupportedVideo when analysis declines the
//     video (the metadata row stays persisted with zero children), or
//     the underlying engine/persistence error.
func (s *IngestService) Ingest(ctx context.Context, slug string) (*domain.VideoIdentity, error) {
	source := youtubeURLPrefix + slug

	meta, err := s.engine.Describe(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("describe failed for slug %q: %w", slug, err)
	}

	thumbnail := meta.ThumbnailURL
	if s.thumbnails != nil {
		thumbnail = s.thumbnails.Mirror(ctx, slug, meta.ThumbnailURL)
	}

	// Metadata row is persisted before the expensive analysis step so
	// it survives an unsupported result
	video := &domain.Video{
		Source:      source,
		YoutubeSlug: slug,
		Author:      meta.Author,
		Title:       meta.Title,
		Thumbnail:   thumbnail,
		Status:      domain.VideoStatusPending,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to create video record: %w", err)
	}

	ctx = logger.WithFields(ctx, logger.Fields{
		logger.FieldVideoID: video.ID,
		logger.FieldSlug:    slug,
	})

	analysis, err := s.engine.Analyze(ctx, source)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedVideo) {
			s.log(ctx).Info("Analysis reported unsupported video")
			if serr := s.videoRepo.SetStatus(ctx, video.ID, domain.VideoStatusUnsupported); serr != nil {
				s.log(ctx).WithError(serr).Error("Failed to mark video unsupported")
			}
			return nil, domain.ErrUnsupportedVideo
		}
		return nil, fmt.Errorf("analyze failed for slug %q: %w", slug, err)
	}

	scripts := DecomposeScripts(analysis.Scripts, video.ID)
	keywords := DecomposeKeywords(analysis.Keywords, video.ID)
	frequencies := DecomposeFrequencies(analysis.Frequencies, video.ID)

	if err := s.scriptRepo.CreateBatch(ctx, scripts); err != nil {
		return nil, fmt.Errorf("failed to persist scripts: %w", err)
	}
	if err := s.keywordRepo.CreateBatch(ctx, keywords); err != nil {
		return nil, fmt.Errorf("failed to persist keywords: %w", err)
	}
	if err := s.frequencyRepo.CreateBatch(ctx, frequencies); err != nil {
		return nil, fmt.Errorf("failed to persist frequencies: %w", err)
	}

	if err := s.videoRepo.SetStatus(ctx, video.ID, domain.VideoStatusAnalyzed); err != nil {
		return nil, fmt.Errorf("failed to mark video analyzed: %w", err)
	}

	logger.With(logger.Fields{
		"scripts":     len(scripts),
		"keywords":    len(keywords),
		"frequencies": len(frequencies),
	}).Info(ctx, "Ingestion completed")

	return &domain.VideoIdentity{ID: video.ID, YoutubeSlug: video.YoutubeSlug}, nil
}
