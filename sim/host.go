package sim

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/parameter"
	"github.com/lixenwraith/rampage/status"
	"github.com/lixenwraith/rampage/trace"
)

// ErrHostClosed is returned by Submit after Close
var ErrHostClosed = errors.New("host closed")

// Tracer receives one record per resolved turn
type Tracer interface {
	Write(trace.Record) error
}

// HostConfig holds optional host collaborators; zero values fall back to defaults
type HostConfig struct {
	BerserkInterval time.Duration
	FadeInterval    time.Duration
	Clock           engine.Clock
	Registry        *status.Registry
	Tracer          Tracer
}

// Host owns the authoritative state and serializes every transition on one goroutine
// Commands arrive through Submit; berserk steps and flash fades are driven by timers
type Host struct {
	engine  *Engine
	sched   *engine.ClockScheduler
	fade    time.Duration
	clock   engine.Clock
	metrics *status.GameMetrics
	tracer  Tracer
	logger  *zap.Logger

	requests chan request
	updates  chan engine.Snapshot
	effects  chan []engine.Effect

	state     *engine.State
	tracedSeq uint64

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

type request struct {
	cmd   Command
	reply chan engine.Snapshot
}

// NewHost creates a host around an engine; Start must be called before Submit
func NewHost(e *Engine, cfg HostConfig) *Host {
	if cfg.BerserkInterval <= 0 {
		cfg.BerserkInterval = parameter.BerserkTickInterval
	}
	if cfg.FadeInterval <= 0 {
		cfg.FadeInterval = parameter.FlashFadeInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = engine.NewTimeProvider()
	}
	if cfg.Registry == nil {
		cfg.Registry = status.NewRegistry()
	}

	return &Host{
		engine:   e,
		sched:    engine.NewClockScheduler(cfg.BerserkInterval),
		fade:     cfg.FadeInterval,
		clock:    cfg.Clock,
		metrics:  status.NewGameMetrics(cfg.Registry),
		tracer:   cfg.Tracer,
		logger:   e.Context().Logger,
		requests: make(chan request, parameter.HostQueueSize),
		updates:  make(chan engine.Snapshot, 1),
		effects:  make(chan []engine.Effect, parameter.HostQueueSize),
		done:     make(chan struct{}),
	}
}

// Start launches the host loop
func (h *Host) Start() {
	h.wg.Add(1)
	core.Go(h.loop)
}

// Close stops the loop and the berserk scheduler; pending Submit calls return ErrHostClosed
func (h *Host) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
		h.sched.Stop()
	})
	h.wg.Wait()
}

// Submit applies a command and waits for the resulting snapshot
func (h *Host) Submit(ctx context.Context, cmd Command) (engine.Snapshot, error) {
	req := request{cmd: cmd, reply: make(chan engine.Snapshot, 1)}

	select {
	case h.requests <- req:
	case <-ctx.Done():
		return engine.Snapshot{}, ctx.Err()
	case <-h.done:
		return engine.Snapshot{}, ErrHostClosed
	}

	select {
	case snap := <-req.reply:
		return snap, nil
	case <-ctx.Done():
		return engine.Snapshot{}, ctx.Err()
	case <-h.done:
		return engine.Snapshot{}, ErrHostClosed
	}
}

// Updates delivers the newest snapshot after every transition; stale ones are dropped
func (h *Host) Updates() <-chan engine.Snapshot {
	return h.updates
}

// Effects delivers feedback cues per transition; dropped when the consumer lags
func (h *Host) Effects() <-chan []engine.Effect {
	return h.effects
}

func (h *Host) loop() {
	defer h.wg.Done()

	fade := time.NewTicker(h.fade)
	defer fade.Stop()

	for {
		select {
		case <-h.done:
			return

		case req := <-h.requests:
			h.metrics.Commands.Add(1)
			next, fx := h.engine.Apply(h.state, req.cmd)
			h.logger.Debug("command",
				zap.Stringer("kind", req.cmd.Kind),
				zap.Bool("accepted", next != h.state),
			)
			if req.cmd.Kind == CmdNewGame {
				h.metrics.Games.Add(1)
				h.tracedSeq = 0
			}
			h.commit(next, fx)
			req.reply <- h.snapshot()

		case gen := <-h.sched.C():
			if gen != h.sched.Current() {
				continue
			}
			h.metrics.AutoSteps.Add(1)
			next, fx := h.engine.AutoStep(h.state)
			h.commit(next, fx)

		case <-fade.C:
			if h.state == nil || h.state.DamageFlash <= 0 {
				continue
			}
			// Fades never re-arm the berserk tick
			h.state = FadeFlash(h.state)
			h.publish()
		}
	}
}

// commit installs a transition result, updates metrics and trace, and reschedules berserk play
func (h *Host) commit(next *engine.State, fx []engine.Effect) {
	prev := h.state
	if len(fx) > 0 {
		select {
		case h.effects <- fx:
		default:
		}
	}
	if next == prev {
		return
	}
	h.state = next

	h.record(prev, next)
	h.publish()

	if CanAutoStep(next) {
		h.sched.Arm()
	} else {
		h.sched.Cancel()
	}
}

func (h *Host) record(prev, next *engine.State) {
	m := h.metrics
	m.GameID.Store(next.GameID.String())
	m.Variant.Store(string(next.Creature.Variant))
	m.Turn.Store(int64(next.Turn))
	m.Score.Store(int64(next.Score))
	m.Kills.Store(int64(next.Kills))
	m.Hunger.Store(int64(next.Creature.Hunger))
	m.HP.Set(next.Creature.HP)
	m.Berserk.Store(next.Creature.Berserk)
	m.GameOver.Store(next.GameOver)
	m.Cause.Store(next.Cause.String())

	if h.tracer == nil {
		return
	}
	newGame := prev == nil || prev.GameID != next.GameID
	if !newGame && prev.Turn == next.Turn && prev.GameOver == next.GameOver {
		return
	}
	rec := trace.FromSnapshot(next.Snapshot(), h.clock.Now(), h.tracedSeq)
	h.tracedSeq = next.Log.LastSeq()
	if err := h.tracer.Write(rec); err != nil {
		h.logger.Warn("trace write failed", zap.Error(err))
	}
}

func (h *Host) snapshot() engine.Snapshot {
	if h.state == nil {
		return engine.Snapshot{}
	}
	return h.state.Snapshot()
}

// publish replaces any unread snapshot with the current one
func (h *Host) publish() {
	snap := h.snapshot()
	select {
	case <-h.updates:
	default:
	}
	select {
	case h.updates <- snap:
	default:
	}
}
