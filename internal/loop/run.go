package loop

import (
	"context"
	"errors"
	"time"

	"github.com/bomma/arcade/internal/loop/config"
)

// ErrStop may be returned by a step function to end Run without an error.
var ErrStop = errors.New("loop stopped")

// Frame is handed to the step function after every tick.
type Frame struct {
	Result   TickResult
	Snapshot Snapshot
}

// Run ticks s every interval and passes each frame to step, until ctx is
// cancelled or step returns an error. Cancellation only takes effect between
// ticks. The session is ended before Run returns.
func Run(ctx context.Context, s *Session, interval time.Duration, step func(Frame) error) error {
	if interval <= 0 {
		interval = config.TickTime
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer s.End()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		res := s.Tick()
		if err := step(Frame{Result: res, Snapshot: s.Snapshot()}); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
}
