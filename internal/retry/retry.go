// Package retry provides the bounded retry policy applied to idempotent,
// timing-dependent pipeline steps. Only errors classified transient are
// retried; terminal errors propagate immediately. The policy is never
// applied to a state-changing submit.
package retry

import (
	"context"
	"time"
)

// Policy controls how a fallible operation is re-attempted.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	// Values below 1 are treated as 1.
	MaxAttempts int

	// Delay is the wait before the second attempt.
	Delay time.Duration

	// Step is added to the wait after each failed attempt, giving a
	// linearly increasing backoff. Zero keeps the backoff fixed.
	Step time.Duration
}

// Classifier reports whether an error is transient and worth re-attempting.
type Classifier func(error) bool

// Do runs op up to p.MaxAttempts times, waiting between attempts per the
// policy. It returns the number of attempts actually made together with
// the final error (nil once op succeeds).
//
// A terminal error (transient(err) == false) stops the loop immediately.
// Exhausting all attempts returns the last transient error. Context
// cancellation interrupts the inter-attempt wait and returns ctx.Err().
func Do(ctx context.Context, p Policy, transient Classifier, op func() error) (int, error) {
	max := p.MaxAttempts
	if max < 1 {
		max = 1
	}

	var err error
	for attempt := 1; attempt <= max; attempt++ {
		if attempt > 1 {
			if werr := wait(ctx, p.waitBefore(attempt)); werr != nil {
				return attempt - 1, werr
			}
		}

		err = op()
		if err == nil {
			return attempt, nil
		}
		if transient == nil || !transient(err) {
			return attempt, err
		}
	}

	return max, err
}

// waitBefore returns the wait applied before the given attempt (2-based:
// the first attempt never waits).
func (p Policy) waitBefore(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	d := p.Delay + time.Duration(attempt-2)*p.Step
	if d < 0 {
		return 0
	}
	return d
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		// Still honor an already-cancelled context.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
