package quran

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a surah or edition does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUpstream is returned when the content API answers with a non-success status.
	ErrUpstream = errors.New("quran api error")
	// ErrInvalidSurahNumber is returned for surah numbers outside 1..SurahCount.
	ErrInvalidSurahNumber = fmt.Errorf("invalid surah number (must be 1-%d): %w", SurahCount, ErrNotFound)
)

// APIError carries the HTTP status of a failed content API call.
type APIError struct {
	StatusCode int
	Status     string
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("quran api %s returned %d %s", e.Path, e.StatusCode, e.Status)
}

// Unwrap makes errors.Is(err, ErrUpstream) hold for every APIError.
func (e *APIError) Unwrap() error { return ErrUpstream }
