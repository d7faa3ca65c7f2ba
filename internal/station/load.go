package station

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tidwall/jsonc"
)

// Kind classifies why a station list could not be loaded.
type Kind int

const (
	NotFound Kind = iota
	ParseError
	Unavailable
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case ParseError:
		return "parse error"
	case Unavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// LoadError reports a station list that could not be read or decoded.
type LoadError struct {
	Kind   Kind
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load stations from %s: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a LoadError of the given kind.
func IsKind(err error, kind Kind) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr) && loadErr.Kind == kind
}

type rawStation struct {
	Title *string `json:"title"`
	URL   *string `json:"url"`
}

// Parse decodes a JSON array of {title, url} objects. Comments and
// trailing commas are accepted. A station missing either field fails
// the whole list. The result is sorted with SortByTitle.
func Parse(data []byte) ([]Station, error) {
	var raw []rawStation
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, fmt.Errorf("decode station list: %w", err)
	}
	if raw == nil {
		return nil, errors.New("decode station list: expected a JSON array")
	}

	stations := make([]Station, 0, len(raw))
	for i, r := range raw {
		if r.Title == nil {
			return nil, fmt.Errorf("station %d: missing \"title\"", i)
		}
		if r.URL == nil {
			return nil, fmt.Errorf("station %d: missing \"url\"", i)
		}
		stations = append(stations, Station{Title: *r.Title, URL: *r.URL})
	}

	SortByTitle(stations)
	return stations, nil
}

// LoadFile reads and parses a station list from disk.
func LoadFile(path string) ([]Station, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Kind: NotFound, Source: path, Err: err}
		}
		return nil, &LoadError{Kind: Unavailable, Source: path, Err: err}
	}

	stations, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Kind: ParseError, Source: path, Err: err}
	}
	return stations, nil
}
