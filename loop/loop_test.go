package loop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/deitrix/blocks/board"
	"github.com/deitrix/blocks/game"
	"github.com/deitrix/blocks/log"
	"github.com/deitrix/blocks/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fast(game.State) time.Duration {
	return time.Millisecond
}

func start(t *testing.T, d *Driver) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- d.Run(ctx)
	}()
	t.Cleanup(cancel)
	return cancel, errc
}

func TestDriver_Run(t *testing.T) {
	bag := piece.NewBag(5)
	d := New(Options{
		Game:   game.New(board.New(10, 20)),
		Next:   bag.Next,
		Speed:  fast,
		Logger: log.Discard(),
	})
	cancel, errc := start(t, d)

	assert.Nil(t, d.Snapshot().Current, "nothing happens before a game starts")
	require.True(t, d.Send(context.Background(), game.CmdToggleGaming))

	require.Eventually(t, func() bool {
		snap := d.Snapshot()
		return snap.Current != nil && snap.Tick > 3
	}, time.Second, time.Millisecond)

	select {
	case <-d.Changes():
	case <-time.After(time.Second):
		t.Fatal("no change notification")
	}

	cancel()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("driver did not stop")
	}
}

func TestDriver_Pause(t *testing.T) {
	d := New(Options{
		Game:   game.New(board.New(10, 20)),
		Next:   func() piece.Kind { return piece.T },
		Speed:  fast,
		Logger: log.Discard(),
	})
	start(t, d)

	ctx := context.Background()
	d.Send(ctx, game.CmdToggleGaming)
	require.Eventually(t, func() bool { return d.Snapshot().Tick > 0 }, time.Second, time.Millisecond)

	d.Send(ctx, game.CmdTogglePlay)
	require.Eventually(t, func() bool { return !d.Snapshot().IsTimeRunning }, time.Second, time.Millisecond)

	tick := d.Snapshot().Tick
	assert.Never(t, func() bool { return d.Snapshot().Tick != tick }, 30*time.Millisecond, 5*time.Millisecond)

	d.Send(ctx, game.CmdTogglePlay)
	require.Eventually(t, func() bool { return d.Snapshot().Tick > tick }, time.Second, time.Millisecond)
}

func TestDriver_OnClear(t *testing.T) {
	g := game.New(board.New(4, 4))
	g.Dispatch(
		game.NewGame{},
		game.SpawnShape{Kind: piece.O}, game.MoveBottom{}, game.MoveBottom{}, game.MoveLeft{},
		game.SpawnShape{Kind: piece.O}, game.MoveRight{}, game.MoveBottom{}, game.MoveBottom{},
	)
	require.Equal(t, 2, g.State().Current.Origin.Y)

	var (
		mu      sync.Mutex
		cleared []int
	)
	d := New(Options{
		Game:  g,
		Next:  func() piece.Kind { return piece.O },
		Speed: fast,
		OnClear: func(lines int) {
			mu.Lock()
			defer mu.Unlock()
			cleared = append(cleared, lines)
		},
		Logger: log.Discard(),
	})
	start(t, d)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(cleared) > 0
	}, time.Second, time.Millisecond)

	mu.Lock()
	assert.Equal(t, 2, cleared[0])
	mu.Unlock()
	assert.GreaterOrEqual(t, d.Snapshot().Score, 300)
}

func TestDriver_Send_ContextDone(t *testing.T) {
	d := New(Options{Game: game.New(board.New(10, 20)), Next: func() piece.Kind { return piece.I }})
	for i := 0; i < CommandBufferSize; i++ {
		require.True(t, d.Send(context.Background(), game.CmdRotate))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, d.Send(ctx, game.CmdRotate))
}

func TestDriver_OnGameOver(t *testing.T) {
	over := make(chan game.State, 1)
	d := New(Options{
		Game:       game.New(board.New(4, 4)),
		Next:       func() piece.Kind { return piece.O },
		Speed:      fast,
		OnGameOver: func(s game.State) { over <- s },
		Logger:     log.Discard(),
	})
	start(t, d)
	d.Send(context.Background(), game.CmdToggleGaming)

	select {
	case s := <-over:
		assert.True(t, s.GameOver)
		assert.False(t, s.IsTimeRunning)
	case <-time.After(time.Second):
		t.Fatal("game did not end")
	}

	d.Send(context.Background(), game.CmdToggleGaming)
	require.Eventually(t, func() bool { return !d.Snapshot().IsGaming }, time.Second, time.Millisecond)
	d.Send(context.Background(), game.CmdToggleGaming)
	select {
	case s := <-over:
		assert.True(t, s.GameOver, "a new round runs until it ends again")
	case <-time.After(time.Second):
		t.Fatal("new round did not end")
	}
}

func TestDriver_Interval(t *testing.T) {
	tests := []struct {
		name  string
		speed time.Duration
		state game.State
		want  time.Duration
	}{
		{"positive override", 5 * time.Millisecond, game.NewState(), 5 * time.Millisecond},
		{"zero falls back to tick speed", 0, game.NewState(), game.TickSpeed(0)},
		{"negative falls back to tick speed", -time.Second, game.State{Level: 9, TickSpeed: game.TickSpeed(9)}, game.TickSpeed(9)},
		{"unset tick speed uses level", 0, game.State{Level: 3}, game.TickSpeed(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(Options{
				Game:   game.New(board.New(10, 20)),
				Speed:  func(game.State) time.Duration { return tt.speed },
				Logger: log.Discard(),
			})
			assert.Equal(t, tt.want, d.interval(tt.state))
		})
	}
}

func TestDriver_Run_ZeroSpeed(t *testing.T) {
	d := New(Options{
		Game:   game.New(board.New(10, 20)),
		Next:   piece.NewBag(1).Next,
		Speed:  func(game.State) time.Duration { return 0 },
		Logger: log.Discard(),
	})
	cancel, errc := start(t, d)
	require.True(t, d.Send(context.Background(), game.CmdToggleGaming))
	require.Eventually(t, func() bool { return d.Snapshot().IsGaming }, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
}
