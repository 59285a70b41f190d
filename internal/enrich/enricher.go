package enrich

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"entitymatch/internal/listings"
	"entitymatch/internal/logging"
	"entitymatch/internal/match"
)

// ProgressFunc reports enrichment progress as records complete.
type ProgressFunc func(completed, total int)

// Summary aggregates the outcome of one enrichment run.
type Summary struct {
	Total     int
	Matched   int
	ByName    int
	ByAddress int
	Unmatched int
}

// Enricher matches every row of a listings file and shapes the results
// into output columns. A nil matcher degrades to all-unmatched output so a
// run can still complete when the registry is unavailable.
type Enricher struct {
	matcher *match.Matcher
	workers int
	logger  *slog.Logger
}

// New creates an Enricher. workers <= 0 uses one worker per CPU.
func New(matcher *match.Matcher, workers int, logger *slog.Logger) *Enricher {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Enricher{
		matcher: matcher,
		workers: workers,
		logger:  logging.NewComponentLogger(logger, "enrich"),
	}
}

// EnrichAll resolves every row of the file. Row order is preserved; a
// panicking record is logged and reported unmatched rather than killing
// the run.
func (e *Enricher) EnrichAll(ctx context.Context, file *listings.File, progress ProgressFunc) ([]listings.Enrichment, Summary, error) {
	total := file.Len()
	results := make([]listings.Enrichment, total)

	if e.matcher == nil {
		e.logger.Warn("no registry table available, emitting unmatched output",
			logging.String(logging.FieldEventType, "degraded"))
		if progress != nil {
			progress(total, total)
		}
		return results, Summary{Total: total, Unmatched: total}, nil
	}

	var completed atomic.Int64
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(e.workers)

	for i := 0; i < total; i++ {
		if ctx.Err() != nil {
			break
		}
		i := i
		group.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					e.logger.Warn("record enrichment panicked",
						logging.Int(logging.FieldRecordIndex, i),
						logging.String("panic", panicString(r)))
					results[i] = listings.Enrichment{}
				}
				done := completed.Add(1)
				if progress != nil {
					progress(int(done), total)
				}
			}()
			results[i] = e.enrichOne(file.Name(i), file.Address(i))
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, Summary{}, err
	}

	summary := summarize(results)
	e.logger.Info("enrichment complete",
		logging.Int("total", summary.Total),
		logging.Int("matched", summary.Matched),
		logging.Int("by_name", summary.ByName),
		logging.Int("by_address", summary.ByAddress),
		logging.Int("unmatched", summary.Unmatched))
	return results, summary, nil
}

func (e *Enricher) enrichOne(name, address string) listings.Enrichment {
	result := e.matcher.FindBestMatch(name, address)
	if !result.Matched() {
		return listings.Enrichment{}
	}
	return listings.Enrichment{
		BusinessName:    cleanNameField(result.Entity.Name),
		AgentName:       AgentName(result.Entity),
		EntityStatus:    result.Entity.Status,
		MatchConfidence: strconv.Itoa(result.Score),
		MatchType:       string(result.Type),
		NameSimilarity:  strconv.Itoa(result.NameSimilarity),
	}
}

func summarize(results []listings.Enrichment) Summary {
	summary := Summary{Total: len(results)}
	for _, r := range results {
		switch match.Type(r.MatchType) {
		case match.TypeName:
			summary.Matched++
			summary.ByName++
		case match.TypeAddress:
			summary.Matched++
			summary.ByAddress++
		default:
			summary.Unmatched++
		}
	}
	return summary
}

func panicString(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	if s, ok := r.(string); ok {
		return s
	}
	return "unknown panic"
}
