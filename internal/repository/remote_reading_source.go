package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"VibraPulse/internal/domain/models"
	domrepo "VibraPulse/internal/domain/repository"
	xhttp "VibraPulse/pkg/http"
)

// RemoteReadingSource fetches raw sample batches from a DAQ gateway over
// JSON/HTTP. It is the reading backend selected by readings.source: daq.
type RemoteReadingSource struct {
	baseURL string
	client  *xhttp.Client
}

func NewRemoteReadingSource(baseURL string, timeout time.Duration) *RemoteReadingSource {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RemoteReadingSource{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

func (r *RemoteReadingSource) FetchBatch(ctx context.Context, sensorID string, n int) (*models.SampleBatch, error) {
	if r.baseURL == "" {
		return nil, fmt.Errorf("daq base url not configured")
	}
	var batch models.SampleBatch
	err := r.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/sensors/%s/raw", r.baseURL, sensorID),
		QueryParams: map[string][]string{
			"n": {strconv.Itoa(n)},
		},
	}, &batch)
	if err != nil {
		return nil, fmt.Errorf("fetch remote batch %s: %w", sensorID, err)
	}
	if batch.SensorID == "" {
		batch.SensorID = sensorID
	}
	return &batch, nil
}

var _ domrepo.ReadingSource = (*RemoteReadingSource)(nil)
