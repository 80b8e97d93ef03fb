package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blog-service/internal/application/interfaces"
	"blog-service/internal/infrastructure/db/postgres"
	"blog-service/internal/infrastructure/postcache"
	"blog-service/internal/infrastructure/ratelimit"
	"blog-service/internal/infrastructure/token"
)

// newTestDB opens a per-test in-memory sqlite database with the schema
// migrated. cache=shared keeps the database alive across pooled
// connections within the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	return db
}

func newTestAuthService(t *testing.T, db *gorm.DB) interfaces.AuthService {
	t.Helper()

	return NewAuthService(
		postgres.NewUserRepository(db),
		token.NewService("test-secret", time.Minute),
		ratelimit.NewLoginLimiter("", time.Minute, 10),
		time.Minute,
	)
}

func newTestPostService(t *testing.T, db *gorm.DB, cacheTTL time.Duration) interfaces.PostService {
	t.Helper()

	return NewPostService(postgres.NewPostRepository(db), postcache.New(100, cacheTTL))
}
