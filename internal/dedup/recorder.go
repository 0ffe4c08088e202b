package dedup

import (
	"sync"

	"github.com/vacantry/housing-backend/internal/pkg/logger"
)

// Report accumulates the statistics of one run. The Merger feeds the removal
// counters; everything else derives from the Comparison stream.
type Report struct {
	mu            sync.Mutex
	overall       int
	match         int
	nonMatch      int
	needReview    int
	removedOwners int64
	removedLinks  int64
	sum           float64
	mean          float64
}

// ReportSnapshot is an immutable copy of a Report, safe to read after the run.
type ReportSnapshot struct {
	Overall       int
	Match         int
	NonMatch      int
	NeedReview    int
	RemovedOwners int64
	RemovedLinks  int64
	Sum           float64
	Mean          float64
}

func NewReport() *Report {
	return &Report{}
}

// AddRemoved is the cross-component counter updated by the Merger.
func (r *Report) AddRemoved(owners, links int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removedOwners += owners
	r.removedLinks += links
}

func (r *Report) record(score float64, disposition Disposition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overall++
	r.sum += score
	switch disposition {
	case DispositionMatch:
		r.match++
	case DispositionNeedsReview:
		r.needReview++
	case DispositionNonMatch:
		r.nonMatch++
	}
	r.mean = r.sum / float64(r.overall)
}

func (r *Report) Snapshot() ReportSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	mean := r.mean
	if r.overall > 0 {
		mean = r.sum / float64(r.overall)
	}
	return ReportSnapshot{
		Overall:       r.overall,
		Match:         r.match,
		NonMatch:      r.nonMatch,
		NeedReview:    r.needReview,
		RemovedOwners: r.removedOwners,
		RemovedLinks:  r.removedLinks,
		Sum:           r.sum,
		Mean:          mean,
	}
}

// Recorder reduces the Comparison stream into the run Report.
type Recorder struct {
	classifier *Classifier
	report     *Report
	log        *logger.Logger
}

func NewRecorder(classifier *Classifier, report *Report, baseLog *logger.Logger) *Recorder {
	return &Recorder{
		classifier: classifier,
		report:     report,
		log:        baseLog.With("component", "Recorder"),
	}
}

func (r *Recorder) Record(comparison *Comparison) {
	disposition := r.classifier.Classify(comparison.Score, comparison.NeedsReview)
	r.report.record(comparison.Score, disposition)
}

// Flush recomputes the mean and logs the final statistics.
func (r *Recorder) Flush() ReportSnapshot {
	snapshot := r.report.Snapshot()
	r.log.Info("Deduplication statistics",
		"overall", snapshot.Overall,
		"match", snapshot.Match,
		"non_match", snapshot.NonMatch,
		"need_review", snapshot.NeedReview,
		"removed_owners", snapshot.RemovedOwners,
		"removed_housing_links", snapshot.RemovedLinks,
		"mean_score", snapshot.Mean,
	)
	return snapshot
}
