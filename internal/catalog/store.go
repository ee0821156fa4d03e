package catalog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/osse101/Alchemy_Go/internal/domain"
	"github.com/osse101/Alchemy_Go/internal/logger"
	"github.com/osse101/Alchemy_Go/internal/metrics"
)

// Source produces fresh catalog snapshots
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
	Name() string
}

// Store holds the current snapshot. Readers never block: a reload builds a
// new snapshot and swaps the pointer, so in-flight brews keep the one they read.
type Store struct {
	current atomic.Pointer[Catalog]
	source  Source

	// serializes reloads
	reloadMu sync.Mutex
}

// NewStore creates an empty store backed by source
func NewStore(source Source) *Store {
	return &Store{source: source}
}

// NewStaticStore creates a store holding a fixed snapshot
func NewStaticStore(c *Catalog) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

// Current returns the active snapshot
func (s *Store) Current() (*Catalog, error) {
	c := s.current.Load()
	if c == nil {
		return nil, domain.ErrCatalogNotLoaded
	}
	return c, nil
}

// Swap installs c and returns the previous snapshot (nil if none)
func (s *Store) Swap(c *Catalog) *Catalog {
	previous := s.current.Swap(c)
	metrics.CatalogEntries.WithLabelValues(metrics.CatalogKindEffects).Set(float64(c.EffectCount()))
	metrics.CatalogEntries.WithLabelValues(metrics.CatalogKindIngredients).Set(float64(c.IngredientCount()))
	return previous
}

// Reload builds a snapshot from the source and swaps it in. On failure the
// current snapshot stays active.
func (s *Store) Reload(ctx context.Context) (*Catalog, error) {
	if s.source == nil {
		return nil, fmt.Errorf("%w: store has no source", ErrInvalidConfig)
	}

	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	log := logger.FromContext(ctx)

	next, err := s.source.Load(ctx)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.OutcomeError).Inc()
		log.Error(LogMsgCatalogReloadFailed, "source", s.source.Name(), "error", err)
		return nil, err
	}

	previous := s.Swap(next)
	metrics.CatalogReloads.WithLabelValues(metrics.OutcomeSuccess).Inc()

	previousVersion := ""
	if previous != nil {
		previousVersion = previous.Version()
	}
	log.Info(LogMsgCatalogReloaded,
		"source", s.source.Name(),
		"version", next.Version(),
		"previous_version", previousVersion,
		"effects", next.EffectCount(),
		"ingredients", next.IngredientCount())

	return next, nil
}

// Ready reports whether a snapshot is loaded
func (s *Store) Ready() bool {
	return s.current.Load() != nil
}
