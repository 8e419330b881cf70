package tracebench

import (
    "fmt";
    "time";
    "context";

    "github.com/marekgalovic/tracebench/math";
    "github.com/marekgalovic/tracebench/reduce";
)

type TrialResult struct {
    NumWorkers int
    TotalTrace int64
    Elapsed time.Duration
}

type Runner interface {
    Run(context.Context) ([]TrialResult, error)
}

type runner struct {
    config *Config
    matrices []math.Matrix
    reporter Reporter
}

func NewRunner(config *Config, matrices []math.Matrix, reporter Reporter) Runner {
    return &runner {
        config: config,
        matrices: matrices,
        reporter: reporter,
    }
}

// Run executes one trial per configured worker count against the shared,
// read-only matrix collection. Workers always run to completion; the context
// is consulted only between trials. Every trial must produce the same total,
// otherwise the run is aborted.
func (r *runner) Run(ctx context.Context) ([]TrialResult, error) {
    results := make([]TrialResult, 0, len(r.config.Benchmark.WorkerCounts))
    for _, numWorkers := range r.config.Benchmark.WorkerCounts {
        select {
        case <- ctx.Done():
            return nil, ctx.Err()
        default:
        }

        start := time.Now()
        total := reduce.SumTraces(r.matrices, numWorkers)
        elapsed := time.Since(start)

        if (len(results) > 0) && (total != results[0].TotalTrace) {
            return nil, fmt.Errorf("Total trace %d with %d workers does not match %d", total, numWorkers, results[0].TotalTrace)
        }

        result := TrialResult{NumWorkers: numWorkers, TotalTrace: total, Elapsed: elapsed}
        results = append(results, result)

        if r.reporter != nil {
            r.reporter.Trial(result)
        }
    }
    return results, nil
}
