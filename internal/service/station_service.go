// Package service provides the business logic layer for loading station data.
package service

import (
	"errors"
	"sync"

	"github.com/glebovdev/radio-cli/internal/api"
	"github.com/glebovdev/radio-cli/internal/cache"
	"github.com/glebovdev/radio-cli/internal/config"
	"github.com/glebovdev/radio-cli/internal/station"
	"github.com/rs/zerolog/log"
)

// ListFetcher downloads a raw station list document.
type ListFetcher interface {
	FetchList(url string) ([]byte, error)
}

// StationService owns the loaded station list. The list is read-only
// after Load returns.
type StationService struct {
	fetcher   ListFetcher
	listCache *cache.Cache
	stations  []station.Station
	source    string
	mu        sync.RWMutex
}

// NewStationService creates a StationService that fetches remote lists
// with fetcher and keeps copies in the user cache directory.
func NewStationService(fetcher ListFetcher) *StationService {
	listCache, err := cache.NewCache()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize list cache, remote lists will not be cached")
	}

	if listCache != nil {
		if err := listCache.CleanExpired(); err != nil {
			log.Debug().Err(err).Msg("Failed to clean expired cache")
		}
	}

	return newStationService(fetcher, listCache)
}

func newStationService(fetcher ListFetcher, listCache *cache.Cache) *StationService {
	return &StationService{
		fetcher:   fetcher,
		listCache: listCache,
	}
}

// Load reads the station list from source, a file path or an http(s) URL.
// Errors are *station.LoadError values.
func (s *StationService) Load(source string) error {
	var (
		stations []station.Station
		err      error
	)

	if config.IsRemote(source) {
		stations, err = s.loadRemote(source)
	} else {
		stations, err = station.LoadFile(source)
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.stations = stations
	s.source = source
	s.mu.Unlock()

	log.Debug().Str("source", source).Int("count", len(stations)).Msg("Stations loaded")
	return nil
}

func (s *StationService) loadRemote(url string) ([]station.Station, error) {
	data, fetchErr := s.fetcher.FetchList(url)
	if fetchErr != nil {
		cached, ok := s.cachedList(url)
		if !ok {
			kind := station.Unavailable
			if errors.Is(fetchErr, api.ErrNotFound) {
				kind = station.NotFound
			}
			return nil, &station.LoadError{Kind: kind, Source: url, Err: fetchErr}
		}
		log.Warn().Err(fetchErr).Str("url", url).Msg("Fetching station list failed, using cached copy")
		data = cached
	}

	stations, err := station.Parse(data)
	if err != nil {
		return nil, &station.LoadError{Kind: station.ParseError, Source: url, Err: err}
	}

	if fetchErr == nil && s.listCache != nil {
		if err := s.listCache.Save(url, data); err != nil {
			log.Debug().Err(err).Str("url", url).Msg("Failed to cache station list")
		}
	}

	return stations, nil
}

func (s *StationService) cachedList(url string) ([]byte, bool) {
	if s.listCache == nil {
		return nil, false
	}
	return s.listCache.Get(url)
}

// Stations returns a copy of the loaded list in display order.
func (s *StationService) Stations() []station.Station {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]station.Station, len(s.stations))
	copy(result, s.stations)
	return result
}

// StationCount returns the number of loaded stations.
func (s *StationService) StationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stations)
}

// Source returns where the current list was loaded from.
func (s *StationService) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}
