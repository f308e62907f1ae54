package loop

import (
	"context"
	"time"

	"github.com/deitrix/blocks/game"
	"github.com/deitrix/blocks/log"
	"github.com/deitrix/blocks/piece"
)

// CommandBufferSize is the number of commands that can wait while a tick is being applied.
const CommandBufferSize = 64

// Driver feeds gravity ticks and player commands into a Game from a single goroutine.
type Driver struct {
	game     *game.Game
	next     func() piece.Kind
	commands chan game.Command
	changes  chan struct{}
	speed    func(game.State) time.Duration
	onClear  func(lines int)
	onOver   func(game.State)
	logger   *log.Logger
}

// Options contains options for creating a new Driver.
type Options struct {
	Game *game.Game
	// Next deals the kind of every spawned shape, usually a Bag's Next.
	Next func() piece.Kind
	// Speed overrides the tick interval. Defaults to the state's TickSpeed, which is also used
	// whenever Speed returns a non-positive duration.
	Speed func(game.State) time.Duration
	// OnClear is called from the driver goroutine after a pass clears at least one line.
	OnClear func(lines int)
	// OnGameOver is called from the driver goroutine with the final state of a round.
	OnGameOver func(game.State)
	Logger     *log.Logger
}

func New(opts Options) *Driver {
	d := &Driver{
		game:     opts.Game,
		next:     opts.Next,
		commands: make(chan game.Command, CommandBufferSize),
		changes:  make(chan struct{}, 1),
		speed:    opts.Speed,
		onClear:  opts.OnClear,
		onOver:   opts.OnGameOver,
		logger:   opts.Logger,
	}
	if d.speed == nil {
		d.speed = func(s game.State) time.Duration { return s.TickSpeed }
	}
	if d.onClear == nil {
		d.onClear = func(int) {}
	}
	if d.onOver == nil {
		d.onOver = func(game.State) {}
	}
	if d.logger == nil {
		d.logger = log.Default()
	}
	return d
}

// Send queues a command for the driver goroutine. It reports false if ctx ends first.
func (d *Driver) Send(ctx context.Context, c game.Command) bool {
	select {
	case d.commands <- c:
		return true
	case <-ctx.Done():
		return false
	}
}

// Changes signals after every applied tick or command. Signals are coalesced, so a reader should
// take a fresh snapshot each time it wakes.
func (d *Driver) Changes() <-chan struct{} {
	return d.changes
}

func (d *Driver) Snapshot() game.Snapshot {
	return d.game.Snapshot()
}

// Run applies ticks and commands until ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	interval := d.interval(d.game.State())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		var before, after game.State
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c := <-d.commands:
			before = d.game.State()
			after = d.game.Command(c)
			d.logger.Trace("Applied command %s", c)
		case <-ticker.C:
			before = d.game.State()
			after = d.game.Tick(d.next)
		}
		d.observe(before, after)
		if next := d.interval(after); next != interval {
			interval = next
			ticker.Reset(interval)
			d.logger.Debug("Tick interval set to %s", interval)
		}
		d.notify()
	}
}

// interval is the tick period for s. It is always positive.
func (d *Driver) interval(s game.State) time.Duration {
	if iv := d.speed(s); iv > 0 {
		return iv
	}
	if s.TickSpeed > 0 {
		return s.TickSpeed
	}
	return game.TickSpeed(s.Level)
}

func (d *Driver) observe(before, after game.State) {
	switch {
	case after.IsGaming && !before.IsGaming:
		d.logger.Info("New game started")
	case !after.IsGaming && before.IsGaming:
		d.logger.Info("Game reset with score %d", before.Score)
	}
	if after.Lines > before.Lines {
		n := after.Lines - before.Lines
		d.logger.Debug("Cleared %d lines for %d points", n, after.Score-before.Score)
		d.onClear(n)
	}
	if after.Level > before.Level {
		d.logger.Info("Reached level %d", after.Level)
	}
	if after.GameOver && !before.GameOver {
		d.logger.Info("Game over: score %d, lines %d, level %d", after.Score, after.Lines, after.Level)
		d.onOver(after)
	}
}

func (d *Driver) notify() {
	select {
	case d.changes <- struct{}{}:
	default:
	}
}
