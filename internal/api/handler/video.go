package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/castela0119/Elice-Team5/internal/api/middleware"
	"github.com/castela0119/Elice-Team5/internal/domain"
	"github.com/castela0119/Elice-Team5/internal/inference"
	"github.com/castela0119/Elice-Team5/internal/service"
	"github.com/gin-gonic/gin"
)

// VideoHandler handles video ingestion, ownership, and read endpoints.
type VideoHandler struct {
	ingestService  *service.IngestService
	libraryService *service.LibraryService
}

// NewVideoHandler creates a new video handler.
// Parameters:
//   - ingestService: ingestion pipeline service.
//   - libraryService: ownership and query service.
// Returns:
//   - *VideoHandler: initialized handler.
func NewVideoHandler(ingestService *service.IngestService, libraryService *service.LibraryService) *VideoHandler {
	return &VideoHandler{
		ingestService:  ingestService,
		libraryService: libraryService,
	}
}

type ingestRequest struct {
	YoutubeSlug string `json:"youtube_slug" binding:"required"`
}

// Ingest handles POST /api/v1/videos.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *VideoHandler) Ingest(c *gin.Context) {
	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	identity, err := h.ingestService.Ingest(c.Request.Context(), req.YoutubeSlug)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedVideo):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported video."})
		case errors.Is(err, inference.ErrInvalidSource):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video source: " + err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to ingest video: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, identity)
}

// ListOwned handles GET /api/v1/videos/list. Requires authentication.
func (h *VideoHandler) ListOwned(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided."})
		return
	}

	videos, err := h.libraryService.ListOwned(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list videos: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, videos)
}

// Get handles GET /api/v1/videos/:id. Publicly readable.
func (h *VideoHandler) Get(c *gin.Context) {
	videoID, ok := h.videoID(c)
	if !ok {
		return
	}

	video, err := h.libraryService.GetByID(c.Request.Context(), videoID)
	if err != nil {
		h.writeLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

// Attach handles POST /api/v1/videos/:id, saving the video to the
// caller's page. Last write wins when two users race.
func (h *VideoHandler) Attach(c *gin.Context) {
	videoID, ok := h.videoID(c)
	if !ok {
		return
	}
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided."})
		return
	}

	if err := h.libraryService.Attach(c.Request.Context(), videoID, userID); err != nil {
		h.writeLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Video saved."})
}

// Detach handles DELETE /api/v1/videos/:id, removing the video from
// whichever page currently holds it.
func (h *VideoHandler) Detach(c *gin.Context) {
	videoID, ok := h.videoID(c)
	if !ok {
		return
	}

	if err := h.libraryService.Detach(c.Request.Context(), videoID); err != nil {
		h.writeLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Video removed."})
}

// Keywords handles GET /api/v1/videos/:id/keywords.
func (h *VideoHandler) Keywords(c *gin.Context) {
	videoID, ok := h.videoID(c)
	if !ok {
		return
	}

	keywords, err := h.libraryService.Keywords(c.Request.Context(), videoID)
	if err != nil {
		h.writeLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, keywords)
}

// Frequencies handles GET /api/v1/videos/:id/frequencies.
func (h *VideoHandler) Frequencies(c *gin.Context) {
	videoID, ok := h.videoID(c)
	if !ok {
		return
	}

	frequencies, err := h.libraryService.Frequencies(c.Request.Context(), videoID)
	if err != nil {
		h.writeLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, frequencies)
}

// Slug handles GET /api/v1/videos/:id/slug.
func (h *VideoHandler) Slug(c *gin.Context) {
	videoID, ok := h.videoID(c)
	if !ok {
		return
	}

	slug, err := h.libraryService.Slug(c.Request.Context(), videoID)
	if err != nil {
		h.writeLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"youtube_slug": slug})
}

// videoID parses the :id path parameter, writing a 400 on failure.
func (h *VideoHandler) videoID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video id"})
		return 0, false
	}
	return uint(id), true
}

func (h *VideoHandler) writeLookupError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found."})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
}
