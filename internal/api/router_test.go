package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/castela0119/Elice-Team5/internal/config"
	"github.com/castela0119/Elice-Team5/internal/domain"
	"github.com/castela0119/Elice-Team5/internal/inference"
	"github.com/castela0119/Elice-Team5/internal/logger"
	"github.com/castela0119/Elice-Team5/internal/repository"
	"github.com/castela0119/Elice-Team5/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stubEngine struct {
	unsupported bool
}

func (e *stubEngine) Describe(ctx context.Context, source string) (*inference.VideoMeta, error) {
	return &inference.VideoMeta{Author: "author", Title: "title", ThumbnailURL: "http://img/t.jpg"}, nil
}

func (e *stubEngine) Analyze(ctx context.Context, source string) (*inference.Analysis, error) {
	if e.unsupported {
		return nil, domain.ErrUnsupportedVideo
	}
	return &inference.Analysis{
		Scripts:     map[string]inference.RawScript{"0": {Script: "hello", Importance: 0.9}},
		Keywords:    map[string]inference.RawKeyword{"0": {Timestamp: 0, Keyword: "hello", Score: 0.8}},
		Frequencies: map[string]int64{"hello": 1},
	}, nil
}

func newTestRouter(t *testing.T, engine inference.Engine) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	videoRepo := repository.NewVideoRepository(db)
	keywordRepo := repository.NewKeywordRepository(db)
	frequencyRepo := repository.NewFrequencyRepository(db)

	log := logger.New(nil)
	ingestService := service.NewIngestService(
		videoRepo,
		repository.NewScriptRepository(db),
		keywordRepo,
		frequencyRepo,
		engine,
		nil,
		log,
	)
	libraryService := service.NewLibraryService(videoRepo, keywordRepo, frequencyRepo)
	authService := service.NewAuthService(repository.NewUserRepository(db))

	return SetupRouter(ingestService, libraryService, authService, &config.ServerConfig{
		Mode: "test",
		CORS: config.CORSConfig{AllowAllOrigins: true},
	}, log)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "hunter2hunter2",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	return resp.Token
}

func ingestVideo(t *testing.T, router *gin.Engine, slug string) domain.VideoIdentity {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/videos", "", gin.H{"youtube_slug": slug})
	if w.Code != http.StatusCreated {
		t.Fatalf("ingest returned %d: %s", w.Code, w.Body.String())
	}
	var identity domain.VideoIdentity
	if err := json.Unmarshal(w.Body.Bytes(), &identity); err != nil {
		t.Fatalf("failed to decode ingest response: %v", err)
	}
	return identity
}

func TestIngestEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubEngine{})

	identity := ingestVideo(t, router, "abc123")
	if identity.YoutubeSlug != "abc123" {
		t.Errorf("expected slug abc123, got %q", identity.YoutubeSlug)
	}
	if identity.ID == 0 {
		t.Error("expected non-zero id")
	}
}

func TestIngestEndpointValidation(t *testing.T) {
	router := newTestRouter(t, &stubEngine{})

	w := doJSON(t, router, http.MethodPost, "/api/v1/videos", "", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing slug, got %d", w.Code)
	}
}

func TestIngestEndpointUnsupported(t *testing.T) {
	router := newTestRouter(t, &stubEngine{unsupported: true})

	w := doJSON(t, router, http.MethodPost, "/api/v1/videos", "", gin.H{"youtube_slug": "abc123"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != "Unsupported video." {
		t.Errorf("expected fixed unsupported message, got %q", resp["error"])
	}
}

func TestGetVideoEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubEngine{})
	identity := ingestVideo(t, router, "lookup")

	// Publicly readable, no token
	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/videos/%d", identity.ID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var video domain.Video
	if err := json.Unmarshal(w.Body.Bytes(), &video); err != nil {
		t.Fatalf("failed to decode video: %v", err)
	}
	if video.YoutubeSlug != "lookup" {
		t.Errorf("expected slug lookup, got %q", video.YoutubeSlug)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/videos/99999", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing video, got %d", w.Code)
	}
}

func TestOwnershipEndpoints(t *testing.T) {
	router := newTestRouter(t, &stubEngine{})
	identity := ingestVideo(t, router, "owned")
	token := registerUser(t, router, "alice")

	// Attach without credentials is rejected
	w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/videos/%d", identity.ID), "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/videos/%d", identity.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("attach returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/videos/list", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list returned %d: %s", w.Code, w.Body.String())
	}
	var owned []domain.Video
	if err := json.Unmarshal(w.Body.Bytes(), &owned); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(owned) != 1 || owned[0].ID != identity.ID {
		t.Fatalf("expected the attached video in the list, got %+v", owned)
	}

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/videos/%d", identity.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("detach returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/videos/list", token, nil)
	if err := json.Unmarshal(w.Body.Bytes(), &owned); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(owned) != 0 {
		t.Errorf("expected empty list after detach, got %+v", owned)
	}

	// Attach on a missing video is a 404
	w = doJSON(t, router, http.MethodPost, "/api/v1/videos/424242", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestListRequiresAuth(t *testing.T) {
	router := newTestRouter(t, &stubEngine{})

	w := doJSON(t, router, http.MethodGet, "/api/v1/videos/list", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/videos/list", "bogus-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown token, got %d", w.Code)
	}
}

func TestChildProjectionEndpoints(t *testing.T) {
	router := newTestRouter(t, &stubEngine{})
	identity := ingestVideo(t, router, "children")

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/videos/%d/keywords", identity.ID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("keywords returned %d", w.Code)
	}
	var keywords []domain.Keyword
	if err := json.Unmarshal(w.Body.Bytes(), &keywords); err != nil {
		t.Fatalf("failed to decode keywords: %v", err)
	}
	if len(keywords) != 1 || keywords[0].Keyword != "hello" {
		t.Errorf("unexpected keywords: %+v", keywords)
	}

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/videos/%d/frequencies", identity.ID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("frequencies returned %d", w.Code)
	}
	var frequencies []domain.Frequency
	if err := json.Unmarshal(w.Body.Bytes(), &frequencies); err != nil {
		t.Fatalf("failed to decode frequencies: %v", err)
	}
	if len(frequencies) != 1 || frequencies[0].Count != 1 {
		t.Errorf("unexpected frequencies: %+v", frequencies)
	}

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/videos/%d/slug", identity.ID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("slug returned %d", w.Code)
	}
	var slug map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &slug); err != nil {
		t.Fatalf("failed to decode slug: %v", err)
	}
	if slug["youtube_slug"] != "children" {
		t.Errorf("expected slug children, got %q", slug["youtube_slug"])
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/videos/777/keywords", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing video, got %d", w.Code)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	router := newTestRouter(t, &stubEngine{})
	registerUser(t, router, "bob")

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "bob",
		"email":    "bob2@example.com",
		"password": "hunter2hunter2",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate username, got %d", w.Code)
	}
}
