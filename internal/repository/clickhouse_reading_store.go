package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"VibraPulse/internal/domain/models"
	domrepo "VibraPulse/internal/domain/repository"
	pkgch "VibraPulse/pkg/clickhouse"
	applogger "VibraPulse/pkg/logger"
)

// ClickHouseReadingStore implements ReadingStore backed by ClickHouse.
// Samples are stored one row per acquisition instant with the calibration
// parameters denormalized alongside, so a fetched batch is self-describing.
type ClickHouseReadingStore struct {
	db    *sql.DB
	table string
	l     *applogger.Logger
}

func NewClickHouseReadingStore(ch *pkgch.Client, table string) *ClickHouseReadingStore {
	return &ClickHouseReadingStore{db: ch.DB(), table: table}
}

// SetLogger injects a structured logger.
func (s *ClickHouseReadingStore) SetLogger(l *applogger.Logger) { s.l = l }

func (s *ClickHouseReadingStore) Init(ctx context.Context) error {
	return s.db.PingContext(ctx) // schema is created at client init
}

// FetchBatch returns the most recent n samples for the sensor in acquisition
// order (index 0 earliest). The batch timestamp is the latest sample's.
func (s *ClickHouseReadingStore) FetchBatch(ctx context.Context, sensorID string, n int) (*models.SampleBatch, error) {
	start := time.Now()
	const qtpl = `
        SELECT ts, h, v, a, rate, g_range
        FROM %s
        WHERE sensor_id = ?
        ORDER BY ts DESC, seq DESC
        LIMIT ?
    `
	q := fmt.Sprintf(qtpl, s.table)
	rows, err := s.db.QueryContext(ctx, q, sensorID, n)
	if err != nil {
		if s.l != nil {
			s.l.Error("clickhouse fetch_batch query error",
				applogger.String("table", s.table),
				applogger.String("sensor", sensorID),
				applogger.Int("limit", n),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("fetch batch: %w", err)
	}
	defer rows.Close()

	batch := &models.SampleBatch{SensorID: sensorID}
	for rows.Next() {
		var (
			ts     time.Time
			h, v, a int
			rate   float64
			gr     int
		)
		if err := rows.Scan(&ts, &h, &v, &a, &rate, &gr); err != nil {
			if s.l != nil {
				s.l.Error("clickhouse fetch_batch scan error",
					applogger.String("table", s.table),
					applogger.String("sensor", sensorID),
					applogger.Error(err),
				)
			}
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		if batch.Timestamp.IsZero() {
			// first row is the newest sample
			batch.Timestamp = ts
			batch.SampleRate = rate
			batch.GRange = gr
		}
		batch.H = append(batch.H, h)
		batch.V = append(batch.V, v)
		batch.A = append(batch.A, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	// reverse to acquisition order
	for i, j := 0, len(batch.H)-1; i < j; i, j = i+1, j-1 {
		batch.H[i], batch.H[j] = batch.H[j], batch.H[i]
		batch.V[i], batch.V[j] = batch.V[j], batch.V[i]
		batch.A[i], batch.A[j] = batch.A[j], batch.A[i]
	}

	if s.l != nil {
		s.l.Info("clickhouse fetch_batch ok",
			applogger.String("table", s.table),
			applogger.String("sensor", sensorID),
			applogger.Int("limit", n),
			applogger.Int("rows", len(batch.H)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return batch, nil
}

// StoreBatch inserts a raw batch as per-sample rows, chunked to bound
// statement size.
func (s *ClickHouseReadingStore) StoreBatch(ctx context.Context, batch *models.SampleBatch) error {
	if batch == nil || batch.Len() == 0 {
		return nil
	}
	dt := time.Duration(0)
	if batch.SampleRate > 0 {
		dt = time.Duration(float64(time.Second) / batch.SampleRate)
	}
	// ts of sample i counts back from the batch timestamp (index 0 earliest).
	last := batch.Len() - 1

	const chunkSize = 2000
	for start := 0; start < batch.Len(); start += chunkSize {
		end := start + chunkSize
		if end > batch.Len() {
			end = batch.Len()
		}

		values := make([]string, 0, end-start)
		args := make([]interface{}, 0, (end-start)*8)
		for i := start; i < end; i++ {
			values = append(values, "(?, ?, ?, ?, ?, ?, ?, ?)")
			args = append(args,
				batch.SensorID,
				batch.Timestamp.Add(-time.Duration(last-i)*dt),
				uint32(i),
				batch.H[i],
				batch.V[i],
				batch.A[i],
				batch.SampleRate,
				batch.GRange,
			)
		}
		q := fmt.Sprintf("INSERT INTO %s (sensor_id, ts, seq, h, v, a, rate, g_range) VALUES %s",
			s.table, strings.Join(values, ","))
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			if s.l != nil {
				s.l.Error("clickhouse store_batch insert error",
					applogger.String("table", s.table),
					applogger.String("sensor", batch.SensorID),
					applogger.Error(err),
				)
			}
			return fmt.Errorf("store batch: %w", err)
		}
	}
	return nil
}

func (s *ClickHouseReadingStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHouseReadingStore) Close() error {
	return nil // pool managed by pkg/clickhouse
}

var _ domrepo.ReadingStore = (*ClickHouseReadingStore)(nil)
