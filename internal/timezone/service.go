package timezone

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // zone rules for time.LoadLocation on hosts without a zoneinfo database

	"fire-monitor/internal/types"

	"github.com/ringsaturn/tzf"
)

// Service resolves the local time zone of a coordinate
type Service interface {
	Locate(coords types.Coords) (*time.Location, error)
}

type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the process-wide timezone service.
// tzf.Finder keeps its polygon data in memory, so it is built once.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// Locate returns the IANA zone (e.g. "America/Denver") containing coords.
func (s *service) Locate(coords types.Coords) (*time.Location, error) {
	s.mu.RLock()
	name := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	s.mu.RUnlock()

	if name == "" {
		return nil, fmt.Errorf("could not determine timezone for coordinates %s", coords)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	return loc, nil
}
