package tracebench

import (
    "sync";

    "github.com/satori/go.uuid";
    log "github.com/sirupsen/logrus";
)

type Reporter interface {
    Trial(TrialResult)
}

type consoleReporter struct {
    runId string
    mutex *sync.Mutex
}

// NewConsoleReporter reports trial results via the process logger. Output is
// serialized by a mutex so reports from concurrent callers do not interleave.
func NewConsoleReporter() Reporter {
    return &consoleReporter {
        runId: uuid.NewV1().String(),
        mutex: &sync.Mutex{},
    }
}

func (r *consoleReporter) Trial(result TrialResult) {
    defer r.mutex.Unlock()
    r.mutex.Lock()

    log.WithFields(log.Fields{
        "run": r.runId,
        "workers": result.NumWorkers,
    }).Infof("Total trace: %d, time: %s", result.TotalTrace, result.Elapsed)
}
