package container

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-manager/internal/config"
	infraCache "library-manager/internal/infrastructure/cache"
	"library-manager/internal/infrastructure/database"
	"library-manager/internal/infrastructure/database/databasetest"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Environment: "test", Version: "test"},
		Database: &database.DBConfig{
			Driver: database.DriverPostgres,
			Host:   "localhost",
			Port:   5432,
		},
		Redis: config.RedisConfig{TTL: time.Minute, MemorySize: 16},
	}
}

func TestBuild_WiresEverything(t *testing.T) {
	fake := databasetest.NewConnector()

	c, err := Build(testConfig(), fake)

	require.NoError(t, err)
	assert.NotNil(t, c.AuthorService)
	assert.NotNil(t, c.GenreService)
	assert.NotNil(t, c.UserService)
	assert.NotNil(t, c.BookService)
	assert.NotNil(t, c.BorrowService)
	assert.NotNil(t, c.BorrowHandler)
	assert.IsType(t, &infraCache.MemoryCache{}, c.Cache)

	// the startup ping used and released one connection
	assert.Equal(t, 1, fake.Opened())
	assert.Equal(t, 1, fake.Closed())

	c.Cleanup()
}

func TestBuild_MemoryCacheUsesConfiguredSize(t *testing.T) {
	c, err := Build(testConfig(), databasetest.NewConnector())
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 100; i++ {
		require.NoError(t, c.Cache.Set(ctx, fmt.Sprintf("author:name:%d", i), i, time.Minute))
	}

	mem, ok := c.Cache.(*infraCache.MemoryCache)
	require.True(t, ok)
	assert.Equal(t, 16, mem.Len())
}

func TestBuild_UnreachableDatabaseIsNotFatal(t *testing.T) {
	fake := databasetest.NewConnector()
	fake.ConnectErr = database.ErrConnection

	c, err := Build(testConfig(), fake)

	require.NoError(t, err)
	assert.NotNil(t, c.BookService)
}

func TestBuild_UnreachableRedisFallsBackToMemory(t *testing.T) {
	cfg := testConfig()
	cfg.Redis.Enabled = true
	cfg.Redis.Host = "127.0.0.1:1"

	c, err := Build(cfg, databasetest.NewConnector())

	require.NoError(t, err)
	assert.IsType(t, &infraCache.MemoryCache{}, c.Cache)
	c.Cleanup()
}
