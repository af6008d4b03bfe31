package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/castela0119/Elice-Team5/internal/logger"
	"github.com/castela0119/Elice-Team5/internal/storage"
	"github.com/go-resty/resty/v2"
)

// ThumbnailService copies engine-reported thumbnails into object
// storage so the library does not depend on the external host staying
// up. Mirroring is best-effort: any failure falls back to the remote
// URL.
type ThumbnailService struct {
	storage storage.ObjectStorage
	http    *resty.Client
	logger  *logger.Logger
}

// NewThumbnailService creates a thumbnail mirror backed by object storage.
func NewThumbnailService(objectStorage storage.ObjectStorage, log *logger.Logger) *ThumbnailService {
	client := resty.New()
	client.SetTimeout(15 * time.Second)

	return &ThumbnailService{
		storage: objectStorage,
		http:    client,
		logger:  log,
	}
}

// Mirror fetches remoteURL and stores it under a slug-derived key,
// returning the public object URL. On any failure it logs a warning
// and returns remoteURL unchanged.
func (s *ThumbnailService) Mirror(ctx context.Context, slug, remoteURL string) string {
	if remoteURL == "" {
		return remoteURL
	}

	resp, err := s.http.R().SetContext(ctx).Get(remoteURL)
	if err != nil || resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		s.logger.WithFields(logger.Fields{logger.FieldSlug: slug}).
			Warn("Thumbnail fetch failed, keeping remote URL")
		return remoteURL
	}

	body := resp.Body()
	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("thumbnails/%s.jpg", slug)
	if err := s.storage.Upload(ctx, key, bytes.NewReader(body), int64(len(body)), contentType); err != nil {
		s.logger.WithFields(logger.Fields{logger.FieldSlug: slug}).
			WithError(err).Warn("Thumbnail upload failed, keeping remote URL")
		return remoteURL
	}

	return s.storage.GetURL(key)
}
