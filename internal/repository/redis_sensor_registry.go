package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"VibraPulse/internal/domain/models"
	domrepo "VibraPulse/internal/domain/repository"
)

// RedisSensorRegistry stores sensor configuration records as JSON in Redis,
// with a set of known IDs for listing.
type RedisSensorRegistry struct {
	cli    *redis.Client
	prefix string
}

func NewRedisSensorRegistry(cli *redis.Client, prefix string) *RedisSensorRegistry {
	if prefix == "" {
		prefix = "vibrapulse"
	}
	return &RedisSensorRegistry{cli: cli, prefix: prefix}
}

func (r *RedisSensorRegistry) key(id string) string {
	return fmt.Sprintf("%s:sensor:%s", r.prefix, id)
}

func (r *RedisSensorRegistry) indexKey() string {
	return r.prefix + ":sensors"
}

func (r *RedisSensorRegistry) Get(ctx context.Context, id string) (*models.Sensor, error) {
	b, err := r.cli.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("registry get %s: %w", id, err)
	}
	var s models.Sensor
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("registry decode %s: %w", id, err)
	}
	return &s, nil
}

func (r *RedisSensorRegistry) List(ctx context.Context) ([]*models.Sensor, error) {
	ids, err := r.cli.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("registry list: %w", err)
	}
	out := make([]*models.Sensor, 0, len(ids))
	for _, id := range ids {
		s, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if s != nil {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *RedisSensorRegistry) Put(ctx context.Context, s *models.Sensor) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("sensor id is required")
	}
	s.UpdatedAt = time.Now().UTC()
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("registry encode %s: %w", s.ID, err)
	}
	pipe := r.cli.TxPipeline()
	pipe.Set(ctx, r.key(s.ID), b, 0)
	pipe.SAdd(ctx, r.indexKey(), s.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("registry put %s: %w", s.ID, err)
	}
	return nil
}

func (r *RedisSensorRegistry) Delete(ctx context.Context, id string) error {
	pipe := r.cli.TxPipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.indexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("registry delete %s: %w", id, err)
	}
	return nil
}

var _ domrepo.SensorRegistry = (*RedisSensorRegistry)(nil)
