package usecase

import (
	"context"
	"fmt"

	domrepo "VibraPulse/internal/domain/repository"
	"VibraPulse/pkg/queue"
)

// AnalysisJobType is the queue message type handled by AnalysisJob.
const AnalysisJobType = "analysis.run"

// AnalysisJobPayload describes one queued re-analysis request.
type AnalysisJobPayload struct {
	SensorID string `json:"sensor_id"`
	Unit     string `json:"unit,omitempty"`
	Samples  int    `json:"samples,omitempty"`
}

// AnalysisJob is the queue worker for asynchronous re-analysis: it fetches the
// latest raw batch, runs the pipeline on all axes, and publishes the result.
type AnalysisJob struct {
	analyzer *Analyzer
	proc     *ResultProcessor
}

func NewAnalysisJob(analyzer *Analyzer, proc *ResultProcessor) *AnalysisJob {
	return &AnalysisJob{analyzer: analyzer, proc: proc}
}

func (j *AnalysisJob) Name() string { return "analysis-run" }

func (j *AnalysisJob) Type() string { return AnalysisJobType }

func (j *AnalysisJob) Handle(ctx context.Context, payload interface{}) error {
	p, err := queue.ParsePayload[AnalysisJobPayload](payload)
	if err != nil {
		return fmt.Errorf("parse analysis payload: %w", err)
	}
	if p.SensorID == "" {
		return fmt.Errorf("sensor_id is required")
	}

	res, err := j.analyzer.LatestBatchAnalysis(ctx, p.SensorID, domrepo.NormalizeUnit(p.Unit), p.Samples)
	if err != nil {
		return fmt.Errorf("analyze sensor %s: %w", p.SensorID, err)
	}
	return j.proc.Process(ctx, res)
}

var _ queue.Job = (*AnalysisJob)(nil)
