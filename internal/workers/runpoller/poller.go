// Package runpoller drives an asynchronous vendor job to a terminal state by
// polling its status on a fixed interval.
package runpoller

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"siteintel/internal/domain"
	"siteintel/internal/logger"
)

// State is the poller's view of the remote job.
type State string

const (
	StateSubmitted State = "SUBMITTED"
	StatePolling   State = "POLLING"
	StateSucceeded State = "SUCCEEDED"
	StateFailed    State = "FAILED"
	StateTimedOut  State = "TIMED_OUT"
)

func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateTimedOut
}

// Outcome is what one status check reports.
type Outcome int

const (
	Pending Outcome = iota
	Done
	Failed
)

// CheckFunc fetches the job status once. status is the vendor's raw label,
// kept for logging and error messages.
type CheckFunc func(ctx context.Context) (status string, outcome Outcome, err error)

// Result describes how a run ended.
type Result struct {
	State      State
	Polls      int
	LastStatus string
}

type Poller struct {
	clock    clockwork.Clock
	interval time.Duration
	maxPolls int
	log      logger.Logger
}

func New(clock clockwork.Clock, interval time.Duration, maxPolls int, log logger.Logger) *Poller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if maxPolls < 1 {
		maxPolls = 1
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Poller{clock: clock, interval: interval, maxPolls: maxPolls, log: log}
}

// Run sleeps one interval before each check, up to maxPolls checks. A job
// reported done on the final poll still counts as succeeded. Failed runs
// return domain.ErrVendorUnavailable; exhausting the cap returns
// domain.ErrVendorTimeout.
func (p *Poller) Run(ctx context.Context, check CheckFunc) (Result, error) {
	res := Result{State: StateSubmitted}
	for res.Polls < p.maxPolls {
		select {
		case <-ctx.Done():
			res.State = StateFailed
			return res, fmt.Errorf("%w: polling aborted: %v", domain.ErrVendorUnavailable, ctx.Err())
		case <-p.clock.After(p.interval):
		}
		res.State = StatePolling
		res.Polls++

		status, outcome, err := check(ctx)
		res.LastStatus = status
		if err != nil {
			res.State = StateFailed
			p.log.Warn("job status check failed", logger.Int("poll", res.Polls), logger.Error(err))
			return res, err
		}
		p.log.Debug("job status", logger.Int("poll", res.Polls), logger.String("status", status))

		switch outcome {
		case Done:
			res.State = StateSucceeded
			return res, nil
		case Failed:
			res.State = StateFailed
			return res, fmt.Errorf("%w: job ended with status %s", domain.ErrVendorUnavailable, status)
		}
	}
	res.State = StateTimedOut
	p.log.Warn("job poll cap reached", logger.Int("polls", res.Polls), logger.String("last_status", res.LastStatus))
	return res, fmt.Errorf("%w after %d polls (last status %s)", domain.ErrVendorTimeout, res.Polls, res.LastStatus)
}
