// Package retry re-attempts event deliveries with exponential backoff.
// The flight API call itself is never retried; each fetch is a single attempt.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Policy controls how a delivery is re-attempted.
type Policy struct {
	// Attempts is the total number of tries, the first included.
	Attempts int

	// BaseDelay is the wait before the second try.
	BaseDelay time.Duration

	// MaxDelay caps every wait.
	MaxDelay time.Duration

	// Factor grows the wait after each failure.
	Factor float64

	// Jitter adds up to this fraction of the wait at random (0.0 to 1.0).
	Jitter float64

	// OnRetry, when set, is called after a failed try that will be retried.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// EventDelivery is the policy for handing flight events to the broker.
var EventDelivery = Policy{
	Attempts:  3,
	BaseDelay: 100 * time.Millisecond,
	MaxDelay:  2 * time.Second,
	Factor:    2.0,
	Jitter:    0.1,
}

// Do calls fn until it succeeds, returns a Permanent error, the context ends,
// or the attempts run out. The last error is returned.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	wait := p.BaseDelay
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			if err != nil {
				return errors.Join(err, ctxErr)
			}
			return ctxErr
		}

		err = fn(ctx)
		if err == nil || IsPermanent(err) || attempt == attempts {
			return err
		}

		sleep := backoff(wait, p.MaxDelay, p.Jitter)
		if p.OnRetry != nil {
			p.OnRetry(attempt, err, sleep)
		}

		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}

		wait = time.Duration(float64(wait) * p.Factor)
	}
	return err
}

// backoff applies jitter to wait and caps it at max.
func backoff(wait, max time.Duration, jitter float64) time.Duration {
	sleep := wait + time.Duration(rand.Float64()*float64(wait)*jitter)
	if max > 0 && sleep > max {
		sleep = max
	}
	return sleep
}

// Permanent marks an error that must not be retried, such as an event that cannot be encoded.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent wraps err as Permanent. A nil err stays nil.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent reports whether err is or wraps a Permanent.
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}
