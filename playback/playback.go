package playback

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/desmidi/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Actuator fires the external trigger signals. Start runs once after the
// initial delay; Advance runs once per checkpoint transition. Any error is
// fatal to the session: a missed trigger desynchronizes everything after
// it, so there are no retries.
type Actuator interface {
	Start() error
	Advance() error
}

type Options struct {
	// delay before the first action
	InitialDelay time.Duration
	// fixed settle delay per step for the actuator, deliberately not
	// drift-corrected
	NoteDelay time.Duration
	// called after each checkpoint transition and once at completion
	OnProgress func(elapsed, total time.Duration)
	Clock      Clock
	Logger     *zap.Logger
}

type session struct {
	id          uuid.UUID
	checkpoints []model.Checkpoint
	act         Actuator
	opts        Options
	clock       Clock
	log         *zap.Logger
	start       time.Time
	total       time.Duration
}

// Play replays the checkpoint sequence in real time, firing one Advance
// per transition at that checkpoint's offset from the start instant.
// Cancel ctx to stop; Play returns ctx's error in that case and nil on
// natural completion. Cancellation is observed at suspend points and loop
// boundaries, so it can land at most one wait interval late.
func Play(ctx context.Context, checkpoints []model.Checkpoint, act Actuator, opts Options) error {
	s := session{
		id:          uuid.New(),
		checkpoints: checkpoints,
		act:         act,
		opts:        opts,
		clock:       opts.Clock,
		log:         opts.Logger,
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if len(checkpoints) > 0 {
		s.total = time.Duration(checkpoints[len(checkpoints)-1].OffsetMS) * time.Millisecond
	}

	s.log.Info("playback session starting",
		zap.String("session", s.id.String()),
		zap.Int("checkpoints", len(checkpoints)),
		zap.Duration("total", s.total),
		zap.Duration("initialDelay", opts.InitialDelay))

	err := s.run(ctx)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.log.Info("playback cancelled", zap.String("session", s.id.String()))
	case err != nil:
		s.log.Error("playback aborted", zap.String("session", s.id.String()), zap.Error(err))
	default:
		s.log.Info("playback complete", zap.String("session", s.id.String()))
	}
	return err
}

func (s *session) run(ctx context.Context) error {
	if s.opts.InitialDelay > 0 {
		s.clock.Sleep(ctx, s.opts.InitialDelay)
	}
	if err := ctx.Err(); err != nil {
		// cancelled during the initial delay: no actions have fired
		return err
	}

	s.start = s.clock.Now()
	if err := s.act.Start(); err != nil {
		return errors.Wrap(err, "start sequence")
	}

	// the timing baseline is the first checkpoint, so the first wait is
	// the gap between checkpoint 0 and checkpoint 1
	for i := 0; i < len(s.checkpoints)-1; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		// wait against true elapsed time, not a fixed per-step delta, so
		// overhead from earlier iterations does not compound
		elapsed := s.clock.Now().Sub(s.start)
		next := time.Duration(s.checkpoints[i+1].OffsetMS) * time.Millisecond
		if wait := next - elapsed; wait > 0 {
			s.clock.Sleep(ctx, wait)
		}
		if s.opts.NoteDelay > 0 {
			s.clock.Sleep(ctx, s.opts.NoteDelay)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.act.Advance(); err != nil {
			return errors.Wrapf(err, "advancing to checkpoint %v", i+1)
		}
		s.report(s.clock.Now().Sub(s.start))
	}

	s.report(s.total)
	return nil
}

func (s *session) report(elapsed time.Duration) {
	if s.opts.OnProgress == nil {
		return
	}
	if elapsed > s.total {
		elapsed = s.total
	}
	s.opts.OnProgress(elapsed, s.total)
}
