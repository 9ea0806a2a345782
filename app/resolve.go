// Package app provides application services that orchestrate domain logic.
package app

import (
	"context"
	"errors"
	"strings"

	"github.com/artpar/varmsg/adapters/metrics"
	"github.com/artpar/varmsg/core/checksum"
	"github.com/artpar/varmsg/core/resolve"
	"github.com/artpar/varmsg/domain/errs"
	"github.com/artpar/varmsg/domain/msgtype"
	"github.com/artpar/varmsg/ports"
	"github.com/rs/zerolog"
)

// ResolveService resolves schemas, fingerprints them, and caches the
// resulting descriptors in a schema store.
type ResolveService struct {
	resolver *resolve.Resolver
	store    ports.SchemaStore
	ids      ports.IDGenerator
	clock    ports.Clock
	logger   zerolog.Logger
	metrics  *metrics.Collector
}

// ResolveServiceConfig contains optional collaborators for ResolveService.
type ResolveServiceConfig struct {
	// Store caches resolved descriptors. Nil disables caching.
	Store ports.SchemaStore

	// Metrics receives resolution observations. Nil disables metrics.
	Metrics *metrics.Collector
}

// NewResolveService creates a resolve service.
func NewResolveService(
	resolver *resolve.Resolver,
	ids ports.IDGenerator,
	clk ports.Clock,
	logger zerolog.Logger,
	cfg ResolveServiceConfig,
) *ResolveService {
	return &ResolveService{
		resolver: resolver,
		store:    cfg.Store,
		ids:      ids,
		clock:    clk,
		logger:   logger.With().Str("service", "resolve").Logger(),
		metrics:  cfg.Metrics,
	}
}

// Resolve returns the descriptor for a data type, serving from the store
// when a previously resolved descriptor exists.
func (s *ResolveService) Resolve(ctx context.Context, dataType string) (msgtype.MessageType, error) {
	if s.store != nil {
		if rec, err := s.store.Get(ctx, dataType); err == nil {
			if s.metrics != nil {
				s.metrics.CacheHits.Inc()
			}
			s.logger.Debug().Str("data_type", dataType).Str("id", rec.ID).Msg("schema served from store")
			return rec.Type, nil
		} else if !errors.Is(err, ports.ErrNotFound) {
			s.logger.Warn().Err(err).Str("data_type", dataType).Msg("schema store lookup failed")
		}
	}
	if s.metrics != nil {
		s.metrics.CacheMisses.Inc()
	}

	return s.resolveFresh(ctx, dataType)
}

// Refresh resolves a data type from its schema files, bypassing and then
// updating the store.
func (s *ResolveService) Refresh(ctx context.Context, dataType string) (msgtype.MessageType, error) {
	return s.resolveFresh(ctx, dataType)
}

func (s *ResolveService) resolveFresh(ctx context.Context, dataType string) (msgtype.MessageType, error) {
	start := s.clock.Now()

	resolved, err := s.resolver.Resolve(dataType)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ObserveError(errKind(err))
		}
		s.logger.Error().Err(err).Str("data_type", dataType).Msg("resolution failed")
		return msgtype.MessageType{}, err
	}

	if resolved.Definition != "" {
		resolved.MD5Sum = checksum.Sum(resolved.Definition)
	}

	elapsed := s.clock.Now().Sub(start)
	if s.metrics != nil {
		s.metrics.ResolutionsTotal.WithLabelValues(packageOf(dataType)).Inc()
		s.metrics.ResolutionDuration.Observe(elapsed.Seconds())
		s.metrics.DependenciesInlined.Observe(float64(countInlined(resolved.Definition)))
	}

	id := s.ids.New()
	s.logger.Info().
		Str("id", id).
		Str("data_type", dataType).
		Str("md5_sum", resolved.MD5Sum).
		Int("definition_bytes", len(resolved.Definition)).
		Dur("elapsed", elapsed).
		Msg("schema resolved")

	if s.store != nil && resolved.IsValid() {
		rec := msgtype.Record{ID: id, Type: resolved, ResolvedAt: s.clock.Now()}
		if err := s.store.Save(ctx, rec); err != nil {
			s.logger.Warn().Err(err).Str("data_type", dataType).Msg("schema store save failed")
		}
	}

	return resolved, nil
}

// Verify resolves a data type and checks its computed MD5 sum against an
// expected one. The wildcard matches anything.
func (s *ResolveService) Verify(ctx context.Context, dataType, expectedSum string) error {
	resolved, err := s.Resolve(ctx, dataType)
	if err != nil {
		return err
	}
	return checksum.Verify(expectedSum, resolved.MD5Sum)
}

// List returns all stored descriptors.
func (s *ResolveService) List(ctx context.Context) ([]msgtype.Record, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.List(ctx)
}

// countInlined counts the dependency sections of a flattened definition.
func countInlined(definition string) int {
	return strings.Count(definition, "\nMSG: ")
}

// packageOf extracts the package part of a data type for metrics labels.
func packageOf(dataType string) string {
	id, err := msgtype.ParseIdentifier(dataType, "")
	if err != nil {
		return "unknown"
	}
	return id.Package
}

// errKind maps a taxonomy error to its metrics label.
func errKind(err error) string {
	var (
		invalidType *errs.InvalidMessageTypeError
		pkgNotFound *errs.PackageNotFoundError
		fileOpen    *errs.FileOpenError
	)
	switch {
	case errors.As(err, &invalidType):
		return "invalid_message_type"
	case errors.As(err, &pkgNotFound):
		return "package_not_found"
	case errors.As(err, &fileOpen):
		return "file_open"
	case errors.Is(err, errs.ErrInvalidDataType):
		return "invalid_data_type"
	default:
		return "other"
	}
}
