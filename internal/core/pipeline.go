// Package core drives raw extracts through normalization into the store.
package core

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/baxromumarov/goalie-stats/internal/config"
	"github.com/baxromumarov/goalie-stats/internal/extract"
	"github.com/baxromumarov/goalie-stats/internal/goalie"
	"github.com/baxromumarov/goalie-stats/internal/normalize"
	"github.com/baxromumarov/goalie-stats/internal/observability"
	"github.com/baxromumarov/goalie-stats/internal/partition"
)

var tracer = otel.Tracer("goalie-stats/internal/core")

// Store is the destination of a run.
type Store interface {
	EnsureSchema(ctx context.Context) error
	Append(ctx context.Context, records []goalie.Record) error
}

type Pipeline struct {
	cfg        *config.Config
	store      Store
	locator    *partition.Locator
	reader     *extract.Reader
	normalizer *normalize.Normalizer
	coercer    *normalize.Coercer
	projector  *normalize.Projector
	logger     *slog.Logger
	metrics    *observability.Metrics
	now        func() time.Time
}

type Option func(*Pipeline)

func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

func WithMetrics(m *observability.Metrics) Option {
	return func(p *Pipeline) {
		if m != nil {
			p.metrics = m
		}
	}
}

func NewPipeline(cfg *config.Config, st Store, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:        cfg,
		store:      st,
		locator:    partition.NewLocator(cfg.Extensions...),
		reader:     extract.NewReader(),
		normalizer: normalize.NewNormalizer(cfg.RenameTable),
		coercer:    normalize.NewCoercer(cfg.PercentageFields),
		projector:  normalize.NewProjector(cfg.CanonicalColumns),
		logger:     slog.Default(),
		metrics:    observability.NewMetrics(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) Metrics() *observability.Metrics {
	return p.metrics
}

// Run ensures the schema, then loads every partition of every source in
// order. Partition and row failures are recorded in the report and do not
// stop the run; a schema failure or cancellation does, and is returned along
// with the partial report.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.NewString(), StartedAt: p.now()}
	log := p.logger.With("run_id", report.RunID)

	ctx, span := tracer.Start(ctx, "pipeline.Run", trace.WithAttributes(attribute.String("run_id", report.RunID)))
	defer span.End()

	fail := func(err error, component string) (*Report, error) {
		report.FinishedAt = p.now()
		report.Error = err.Error()
		p.metrics.IncError(observability.Classify(err), component)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return report, err
	}

	if err := p.store.EnsureSchema(ctx); err != nil {
		log.Error("failed to ensure schema", "error", err)
		return fail(err, "store")
	}

	for _, src := range p.cfg.Sources() {
		if _, err := os.Stat(src.Dir); errors.Is(err, fs.ErrNotExist) {
			log.Warn("source directory missing", "source", src.Name, "dir", src.Dir)
			continue
		}

		for cand, err := range p.locator.Locate(src.Dir) {
			if err != nil {
				log.Error("failed to list source directory", "source", src.Name, "dir", src.Dir, "error", err)
				p.metrics.IncError(observability.ErrorRead, "locator")
				break
			}
			if err := ctx.Err(); err != nil {
				return fail(err, "pipeline")
			}

			res := p.loadPartition(ctx, log, src, cand)
			p.metrics.IncPartition(string(res.State))
			report.Partitions = append(report.Partitions, res)
		}
	}

	report.FinishedAt = p.now()
	p.metrics.ObserveRunDuration(report.Duration().Seconds())

	s := report.Summary()
	span.SetAttributes(
		attribute.Int("partitions.loaded", s.Loaded),
		attribute.Int("partitions.skipped", s.Skipped),
		attribute.Int("partitions.failed", s.Failed),
		attribute.Int("rows", s.Rows),
	)
	log.Info("data loading complete",
		"loaded", s.Loaded,
		"skipped", s.Skipped,
		"failed", s.Failed,
		"rows", s.Rows,
		"dropped_rows", s.DroppedRows,
		"duration", report.Duration().String(),
	)
	return report, nil
}

func (p *Pipeline) loadPartition(ctx context.Context, log *slog.Logger, src config.Source, cand partition.Candidate) PartitionResult {
	res := PartitionResult{File: cand.Name, Path: cand.Path, Source: src.Name, State: StateDiscovered}
	log = log.With("file", cand.Name, "source", src.Name)

	ctx, span := tracer.Start(ctx, "pipeline.Partition",
		trace.WithAttributes(attribute.String("file", cand.Name), attribute.String("source", src.Name)))
	defer span.End()

	stop := func(state State, err error, component string) PartitionResult {
		res.State, res.err, res.Error = state, err, err.Error()
		p.metrics.IncError(observability.Classify(err), component)
		span.RecordError(err)
		if state == StateFailed {
			span.SetStatus(codes.Error, err.Error())
		}
		return res
	}

	key, err := partition.Parse(cand.Name, p.cfg.SourceNames())
	if err != nil {
		log.Warn("skipping file", "error", err)
		return stop(StateSkipped, err, "locator")
	}
	res.Key = key
	span.SetAttributes(attribute.String("partition", key.String()))

	ex, err := p.reader.ReadFile(cand.Path, src.Delimiter)
	if err != nil {
		log.Error("failed to read extract", "error", err)
		return stop(StateFailed, err, "extract")
	}
	res.State = StateExtracted
	res.RowsRead = len(ex.Rows) + len(ex.Rejected)
	for _, rej := range ex.Rejected {
		p.dropRow(log, &res, key, rej.Line, rej)
	}

	headers := p.normalizer.Headers(ex.Header)
	res.DroppedColumns = p.projector.Dropped(headers)
	for _, d := range res.DroppedColumns {
		if d.Closest != "" {
			log.Info("column not in schema", "column", d.Name, "closest", d.Closest)
			continue
		}
		log.Debug("column not in schema", "column", d.Name)
	}
	rows := p.normalizer.Rows(headers, ex.Rows)
	res.State = StateNormalized

	records := make([]goalie.Record, 0, len(rows))
	for i, row := range rows {
		rec, err := p.toRecord(row, key)
		if err != nil {
			p.dropRow(log, &res, key, ex.Lines[i], err)
			continue
		}
		records = append(records, rec)
	}
	slices.SortStableFunc(res.Dropped, func(a, b RowDrop) int { return a.Line - b.Line })

	if err := p.store.Append(ctx, records); err != nil {
		log.Error("failed to append partition", "rows", len(records), "error", err)
		return stop(StateFailed, err, "store")
	}
	res.State = StateLoaded
	res.RowsLoaded = len(records)
	p.metrics.AddRowsLoaded(key.Source, len(records))
	log.Info("partition loaded", "partition", key.String(), "rows", len(records), "dropped", len(res.Dropped))
	return res
}

func (p *Pipeline) dropRow(log *slog.Logger, res *PartitionResult, key partition.Key, line int, err error) {
	reason := observability.Classify(err)
	res.Dropped = append(res.Dropped, RowDrop{Line: line, Reason: reason, Error: err.Error()})
	p.metrics.IncRowDropped(key.Source, reason)
	log.Warn("dropping row", "line", line, "error", err)
}

// toRecord runs one normalized row through coerce, stamp and project, then
// decodes the typed record.
func (p *Pipeline) toRecord(row normalize.Row, key partition.Key) (goalie.Record, error) {
	coerced, err := p.coercer.Coerce(row)
	if err != nil {
		return goalie.Record{}, err
	}
	projected := p.projector.Project(normalize.WithPartition(coerced, key))
	return goalie.Decode(projected.Columns, projected.Values)
}
