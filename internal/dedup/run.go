package dedup

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vacantry/housing-backend/internal/pkg/logger"
	"github.com/vacantry/housing-backend/internal/types"
)

// Run owns the per-run state of one deduplication pass: the pairwise cache and
// the report. It is created at run start and discarded with the run, so no
// state leaks across passes.
type Run struct {
	cache  *PairCache
	report *Report
}

func NewRun() *Run {
	return &Run{
		cache:  NewPairCache(),
		report: NewReport(),
	}
}

func (r *Run) Cache() *PairCache { return r.cache }
func (r *Run) Report() *Report   { return r.report }

// Engine pipelines a stream of owners through the Evaluator and fans the
// resulting comparisons out to the Merger and the Recorder. The two consumers
// observe the same logical stream; the Recorder sees it in emission order.
type Engine struct {
	evaluator *Evaluator
	merger    *Merger
	recorder  *Recorder
	buffer    int
	log       *logger.Logger
}

func NewEngine(evaluator *Evaluator, merger *Merger, recorder *Recorder, cfg Config, baseLog *logger.Logger) *Engine {
	return &Engine{
		evaluator: evaluator,
		merger:    merger,
		recorder:  recorder,
		buffer:    cfg.BufferSize,
		log:       baseLog.With("component", "DedupEngine"),
	}
}

// Process drains the owner stream and returns the flushed report. A failing
// comparison only skips its owner; a failing merge rolls back, cancels the
// run and is returned after the report is flushed.
func (e *Engine) Process(ctx context.Context, owners <-chan *types.Owner) (ReportSnapshot, error) {
	comparisons := make(chan *Comparison, e.buffer)
	toMerge := make(chan *Comparison, e.buffer)
	toRecord := make(chan *Comparison, e.buffer)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(comparisons)
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case owner, ok := <-owners:
				if !ok {
					return nil
				}
				comparison, err := e.evaluator.Evaluate(ctx, owner)
				if err != nil {
					e.log.Error("Evaluation failed, skipping owner", "owner_id", owner.ID, "error", err)
					continue
				}
				select {
				case comparisons <- comparison:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	})

	g.Go(func() error {
		defer close(toMerge)
		defer close(toRecord)
		for comparison := range comparisons {
			select {
			case toRecord <- comparison:
			case <-ctx.Done():
				return ctx.Err()
			}
			select {
			case toMerge <- comparison:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	g.Go(func() error {
		for comparison := range toMerge {
			if err := e.merger.Merge(ctx, comparison); err != nil {
				return err
			}
		}
		return nil
	})

	g.Go(func() error {
		for comparison := range toRecord {
			e.recorder.Record(comparison)
		}
		return nil
	})

	err := g.Wait()
	return e.recorder.Flush(), err
}
