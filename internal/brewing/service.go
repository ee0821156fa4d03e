package brewing

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"

	"github.com/osse101/Alchemy_Go/internal/catalog"
	"github.com/osse101/Alchemy_Go/internal/domain"
	"github.com/osse101/Alchemy_Go/internal/logger"
	"github.com/osse101/Alchemy_Go/internal/metrics"
)

// CatalogProvider hands out the active catalog snapshot. *catalog.Store satisfies it.
type CatalogProvider interface {
	Current() (*catalog.Catalog, error)
}

// Service defines the brewing operations exposed to transports
type Service interface {
	Brew(ctx context.Context, ingredients []string, opts Options) (*Result, error)
	BrewByEffects(ctx context.Context, effects []string, opts Options) (*Result, error)
	CacheStats() CacheStats
	ClearCache()
}

// Result is a ranked potion listing and the snapshot it was computed from
type Result struct {
	CatalogVersion     string          `json:"catalog_version"`
	Potions            []domain.Potion `json:"potions"`
	Count              int             `json:"count"`
	Candidates         int             `json:"candidates"`
	CombinationsTested int             `json:"combinations_tested"`
	Cached             bool            `json:"cached"`
}

// CacheStats reports brew cache activity
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
}

// Config holds service limits and cache sizing
type Config struct {
	MaxIngredients int
	MaxCandidates  int
	CacheSize      int
	CacheTTL       time.Duration
	// Timeout bounds one computation, which may be shared by coalesced callers
	Timeout time.Duration
}

type service struct {
	catalogs CatalogProvider
	config   Config

	cache *expirable.LRU[string, *Result]
	group singleflight.Group

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// NewService creates a brewing service. Zero config fields take defaults.
func NewService(catalogs CatalogProvider, config Config) Service {
	if config.MaxIngredients <= 0 {
		config.MaxIngredients = DefaultMaxIngredients
	}
	if config.MaxCandidates <= 0 {
		config.MaxCandidates = DefaultMaxCandidates
	}
	if config.CacheSize <= 0 {
		config.CacheSize = DefaultCacheSize
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	s := &service{catalogs: catalogs, config: config}
	s.cache = expirable.NewLRU[string, *Result](config.CacheSize, func(string, *Result) {
		s.evictions.Add(1)
	}, config.CacheTTL)
	return s
}

// Brew ranks the potions the named ingredients can make
func (s *service) Brew(ctx context.Context, ingredients []string, opts Options) (*Result, error) {
	// repeats collapse during resolution, so only distinct names count
	if n := len(foldNames(ingredients)); n > s.config.MaxIngredients {
		metrics.BrewRequests.WithLabelValues(metrics.ModeIngredients, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("%w: %d requested (max %d)", domain.ErrTooManyIngredients, n, s.config.MaxIngredients)
	}
	return s.run(ctx, metrics.ModeIngredients, ingredients, opts, brew)
}

// BrewByEffects ranks the potions carrying every requested effect
func (s *service) BrewByEffects(ctx context.Context, effects []string, opts Options) (*Result, error) {
	opts.MaxCandidates = s.config.MaxCandidates
	return s.run(ctx, metrics.ModeEffects, effects, opts, brewByTargetEffects)
}

type brewFunc func(ctx context.Context, cat Catalog, names []string, opts Options) ([]domain.Potion, stats, error)

func (s *service) run(ctx context.Context, mode string, names []string, opts Options, fn brewFunc) (*Result, error) {
	log := logger.FromContext(ctx)

	result, err := s.lookupOrBrew(ctx, mode, names, opts, fn)
	if err != nil {
		metrics.BrewRequests.WithLabelValues(mode, metrics.OutcomeError).Inc()
		if isUserError(err) {
			log.Debug(LogMsgBrewFailed, "mode", mode, "inputs", names, "error", err)
		} else {
			log.Error(LogMsgBrewFailed, "mode", mode, "inputs", names, "error", err)
		}
		return nil, err
	}

	metrics.BrewRequests.WithLabelValues(mode, metrics.OutcomeSuccess).Inc()
	return result, nil
}

func (s *service) lookupOrBrew(ctx context.Context, mode string, names []string, opts Options, fn brewFunc) (*Result, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cat, err := s.catalogs.Current()
	if err != nil {
		return nil, err
	}
	ctx = logger.WithCatalogVersion(ctx, cat.Version())

	key := cacheKey(cat.Version(), mode, names, opts)
	if cached, ok := s.cache.Get(key); ok {
		s.hits.Add(1)
		metrics.BrewCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
		return cached.clone(true), nil
	}
	s.misses.Add(1)
	metrics.BrewCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()

	ch := s.group.DoChan(key, func() (interface{}, error) {
		// the flight is shared, so one caller leaving must not cancel it
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.Timeout)
		defer cancel()

		start := time.Now()
		potions, st, err := fn(flightCtx, cat, names, opts)
		if err != nil {
			return nil, err
		}
		elapsed := time.Since(start)

		metrics.BrewDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
		metrics.CombinationsTested.Add(float64(st.combinations))
		metrics.PotionsFound.Observe(float64(len(potions)))

		if potions == nil {
			potions = []domain.Potion{}
		}
		result := &Result{
			CatalogVersion:     cat.Version(),
			Potions:            potions,
			Count:              len(potions),
			Candidates:         st.candidates,
			CombinationsTested: st.combinations,
		}
		s.cache.Add(key, result)

		logger.FromContext(flightCtx).Debug(LogMsgBrewCompleted,
			"mode", mode,
			"candidates", st.candidates,
			"combinations", st.combinations,
			"potions", len(potions),
			"duration", elapsed)
		return result, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Result).clone(false), nil
	}
}

// clone copies r so callers never share a slice with the cache
func (r *Result) clone(cached bool) *Result {
	out := *r
	out.Potions = slices.Clone(r.Potions)
	out.Cached = cached
	return &out
}

// CacheStats returns brew cache counters
func (s *service) CacheStats() CacheStats {
	return CacheStats{
		Hits:      s.hits.Load(),
		Misses:    s.misses.Load(),
		Evictions: s.evictions.Load(),
		Size:      s.cache.Len(),
	}
}

// ClearCache drops every cached result
func (s *service) ClearCache() {
	s.cache.Purge()
	logger.FromContext(context.Background()).Info(LogMsgCacheCleared)
}

func validateOptions(opts Options) error {
	if opts.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidInput)
	}
	if _, err := ParseSortKey(string(opts.SortBy)); err != nil {
		return err
	}
	return nil
}

// foldNames case-folds and trims names, dropping repeats after the first
func foldNames(names []string) []string {
	folder := cases.Fold()
	out := make([]string, 0, len(names))
	for _, name := range names {
		folded := folder.String(strings.TrimSpace(name))
		if !slices.Contains(out, folded) {
			out = append(out, folded)
		}
	}
	return out
}

// cacheKey identifies a brew by snapshot, mode, options and the distinct
// folded inputs. Input order is kept since it decides which ingredients a
// tied potion shows.
func cacheKey(version, mode string, names []string, opts Options) string {
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = SortByValue
	}

	folded := foldNames(names)
	parts := make([]string, 0, len(folded)+4)
	parts = append(parts, version, mode, strconv.Itoa(opts.Limit), string(sortBy))
	parts = append(parts, folded...)
	return strings.Join(parts, cacheKeySeparator)
}

// isUserError reports whether err was caused by the request rather than the
// service or its catalog
func isUserError(err error) bool {
	return errors.Is(err, domain.ErrUnknownIngredient) ||
		errors.Is(err, domain.ErrEffectNotFound) ||
		errors.Is(err, domain.ErrTooManyIngredients) ||
		errors.Is(err, domain.ErrInvalidInput)
}
