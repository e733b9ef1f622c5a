package repository

import (
	"context"
	"time"

	models "VibraPulse/internal/domain/models"
	domrepo "VibraPulse/internal/domain/repository"
	pkgcache "VibraPulse/pkg/cache"
)

// CachedSensorRegistry layers a read-through cache over a SensorRegistry.
// Ingest reads the sensor config for every batch, so Get needs to stay hot.
type CachedSensorRegistry struct {
	inner domrepo.SensorRegistry
	cache pkgcache.Service
	ttl   time.Duration
}

func NewCachedSensorRegistry(inner domrepo.SensorRegistry, cache pkgcache.Service, ttl time.Duration) *CachedSensorRegistry {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CachedSensorRegistry{inner: inner, cache: cache, ttl: ttl}
}

func (r *CachedSensorRegistry) key(id string) string { return "sensorcfg:" + id }

func (r *CachedSensorRegistry) Get(ctx context.Context, id string) (*models.Sensor, error) {
	var cached models.Sensor
	if err := r.cache.Get(ctx, r.key(id), &cached); err == nil {
		return &cached, nil
	}
	s, err := r.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s != nil {
		_ = r.cache.Set(ctx, r.key(id), s, r.ttl)
	}
	return s, nil
}

func (r *CachedSensorRegistry) List(ctx context.Context) ([]*models.Sensor, error) {
	return r.inner.List(ctx)
}

func (r *CachedSensorRegistry) Put(ctx context.Context, s *models.Sensor) error {
	if err := r.inner.Put(ctx, s); err != nil {
		return err
	}
	return r.cache.Set(ctx, r.key(s.ID), s, r.ttl)
}

func (r *CachedSensorRegistry) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	return r.cache.Delete(ctx, r.key(id))
}

var _ domrepo.SensorRegistry = (*CachedSensorRegistry)(nil)
