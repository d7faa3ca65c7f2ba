// Package cache keeps downloaded station lists on disk so a remote source
// stays usable while the network is down.
package cache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultExpiry is how long cached lists are valid (7 days).
	DefaultExpiry = 7 * 24 * time.Hour
	// ListSubdir is the subdirectory for cached station lists.
	ListSubdir = "lists"
	// AppName is used for the cache directory name.
	AppName = "radio-cli"
)

// Cache manages disk-based copies of station lists keyed by source URL.
type Cache struct {
	baseDir string
	expiry  time.Duration
}

// NewCache creates a new Cache instance in the user cache directory with the default expiry.
func NewCache() (*Cache, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return nil, err
	}

	return NewCacheAt(cacheDir, DefaultExpiry), nil
}

// NewCacheAt creates a Cache rooted at dir.
func NewCacheAt(dir string, expiry time.Duration) *Cache {
	return &Cache{
		baseDir: dir,
		expiry:  expiry,
	}
}

// GetCacheDir returns the platform-specific cache directory for the application.
func GetCacheDir() (string, error) {
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user cache directory: %w", err)
	}

	cacheDir := filepath.Join(userCacheDir, AppName)
	return cacheDir, nil
}

func (c *Cache) ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

func hashURL(url string) string {
	hash := md5.Sum([]byte(url))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) listPath(url string) string {
	return filepath.Join(c.baseDir, ListSubdir, hashURL(url)+".json")
}

// Get returns the cached body for url. The second result is false if
// nothing is cached or the entry has expired.
func (c *Cache) Get(url string) ([]byte, bool) {
	path := c.listPath(url)

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}

	if time.Since(info.ModTime()) > c.expiry {
		if err := os.Remove(path); err != nil {
			log.Debug().Err(err).Str("file", path).Msg("Failed to remove expired cache file")
		}
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("file", path).Msg("Failed to read cached list")
		return nil, false
	}

	return data, true
}

// Save stores data in the cache, keyed by its URL.
func (c *Cache) Save(url string, data []byte) error {
	dir := filepath.Join(c.baseDir, ListSubdir)

	if err := c.ensureDir(dir); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".list-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close cache file: %w", err)
	}

	if err := os.Rename(tmpPath, c.listPath(url)); err != nil {
		return fmt.Errorf("failed to rename cache file: %w", err)
	}

	tmpPath = ""
	return nil
}

// CleanExpired removes cache files older than the expiry duration.
func (c *Cache) CleanExpired() error {
	dir := filepath.Join(c.baseDir, ListSubdir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	now := time.Now()
	var removed, failed int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			log.Debug().Err(err).Str("file", entry.Name()).Msg("Failed to get file info")
			continue
		}

		if now.Sub(info.ModTime()) > c.expiry {
			filePath := filepath.Join(dir, entry.Name())
			if err := os.Remove(filePath); err != nil {
				log.Debug().Err(err).Str("file", filePath).Msg("Failed to remove expired cache file")
				failed++
			} else {
				removed++
			}
		}
	}

	if removed > 0 || failed > 0 {
		log.Debug().Int("removed", removed).Int("failed", failed).Msg("Cache cleanup completed")
	}

	return nil
}
