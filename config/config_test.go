package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Test with default values
	config := LoadConfig()
	assert.Equal(t, "8000", config.ServerPort)
	assert.Equal(t, "memcache", config.CacheBackend)
	assert.Equal(t, "localhost:11211", config.MemcacheAddr)
	assert.Equal(t, "http://books.toscrape.com/", config.ScrapeBaseURL)
	assert.Equal(t, 0, config.ScrapeCategoryIndex)
	assert.Equal(t, 0, config.ScrapeMaxPages)
	assert.Equal(t, 500*time.Millisecond, config.ScrapePageDelay)
	assert.Equal(t, 60*time.Second, config.StatsCacheTTL)

	// Test with environment variables
	os.Setenv("SERVER_PORT", "9000")
	os.Setenv("CACHE_BACKEND", "redis")
	os.Setenv("REDIS_ADDR", "redis.example.com:6379")
	os.Setenv("URL_TO_SCRAPE", "https://example.com/catalogue")
	os.Setenv("SCRAPE_CATEGORY_INDEX", "3")
	os.Setenv("SCRAPE_MAX_PAGES", "5")
	os.Setenv("SCRAPE_PAGE_DELAY_MS", "250")

	config = LoadConfig()
	assert.Equal(t, "9000", config.ServerPort)
	assert.Equal(t, "redis", config.CacheBackend)
	assert.Equal(t, "redis.example.com:6379", config.RedisAddr)
	assert.Equal(t, "https://example.com/catalogue", config.ScrapeBaseURL)
	assert.Equal(t, 3, config.ScrapeCategoryIndex)
	assert.Equal(t, 5, config.ScrapeMaxPages)
	assert.Equal(t, 250*time.Millisecond, config.ScrapePageDelay)

	// Clean up
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("CACHE_BACKEND")
	os.Unsetenv("REDIS_ADDR")
	os.Unsetenv("URL_TO_SCRAPE")
	os.Unsetenv("SCRAPE_CATEGORY_INDEX")
	os.Unsetenv("SCRAPE_MAX_PAGES")
	os.Unsetenv("SCRAPE_PAGE_DELAY_MS")
}

func TestValidate(t *testing.T) {
	config := LoadConfig()
	config.JWTSecret = "secret"
	assert.NoError(t, config.Validate())

	invalid := config
	invalid.JWTSecret = ""
	assert.Error(t, invalid.Validate())

	invalid = config
	invalid.CacheBackend = "etcd"
	assert.Error(t, invalid.Validate())

	invalid = config
	invalid.ScrapeBaseURL = "not a url"
	assert.Error(t, invalid.Validate())

	invalid = config
	invalid.ScrapeCategoryIndex = -1
	assert.Error(t, invalid.Validate())
}
