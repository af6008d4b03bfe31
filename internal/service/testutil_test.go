package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/castela0119/Elice-Team5/internal/inference"
	"github.com/castela0119/Elice-Team5/internal/repository"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory SQLite database with the full
// schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

// fakeEngine is a test double for the inference engine. Unset error
// fields mean success with the configured payloads.
type fakeEngine struct {
	meta        *inference.VideoMeta
	analysis    *inference.Analysis
	describeErr error
	analyzeErr  error

	describeCalls int
	analyzeCalls  int
}

func (f *fakeEngine) Describe(ctx context.Context, source string) (*inference.VideoMeta, error) {
	f.describeCalls++
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	if f.meta != nil {
		return f.meta, nil
	}
	return &inference.VideoMeta{Author: "author", Title: "title", ThumbnailURL: "http://img/thumb.jpg"}, nil
}

func (f *fakeEngine) Analyze(ctx context.Context, source string) (*inference.Analysis, error) {
	f.analyzeCalls++
	if f.analyzeErr != nil {
		return nil, f.analyzeErr
	}
	if f.analysis != nil {
		return f.analysis, nil
	}
	return &inference.Analysis{}, nil
}
