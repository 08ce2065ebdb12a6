package carousel

import (
	"sync"
	"time"

	"github.com/genricoloni/promocast/internal/domain"
	"go.uber.org/zap"
)

// Ticker is the periodic clock source
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker with the given period
type TickerFactory func(d time.Duration) Ticker

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

type nopRenderer struct{}

func (nopRenderer) Render(domain.Frame) {}

// Player drives a Machine from a single clock and funnels manual
// navigation through the same lock, so auto-advance and user input
// never race. Every frame is handed to the renderer in mutation order.
type Player struct {
	logger    *zap.Logger
	timing    Timing
	renderer  domain.Renderer
	newTicker TickerFactory

	mu       sync.Mutex
	renderMu sync.Mutex // held from snapshot to Render, keeps frames ordered
	machine  *Machine
	onExit   func()
	gen      uint64 // bumped on every clock restart, stale ticks compare against it
	ticker   Ticker
	stop     chan struct{}
	wg       sync.WaitGroup
}

// NewPlayer creates an idle player
func NewPlayer(logger *zap.Logger, timing Timing, renderer domain.Renderer) *Player {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	if timing.Tick <= 0 {
		timing.Tick = defaultTickInterval
	}
	return &Player{
		logger:    logger,
		timing:    timing,
		renderer:  renderer,
		newTicker: NewTimeTicker,
		machine:   NewMachine(timing),
	}
}

// Start launches a session. onExit is invoked once, with the lock
// released, when the session ends. A running session is replaced.
func (p *Player) Start(items []domain.ResolvedItem, store domain.Store, durationSeconds int, onExit func()) error {
	p.mu.Lock()
	p.stopClockLocked()
	if err := p.machine.Start(items, store, durationSeconds); err != nil {
		p.mu.Unlock()
		p.logger.Warn("Playback not started", zap.Error(err))
		return err
	}
	p.onExit = onExit
	p.startClockLocked()

	p.logger.Info("Playback started",
		zap.Int("items", p.machine.Len()),
		zap.String("store", store.Name),
		zap.Duration("duration", p.machine.Duration()))

	p.publishLocked()
	return nil
}

// Next advances one slide
func (p *Player) Next() { p.navigate(func(m *Machine) bool { return m.Advance(1) }) }

// Prev goes back one slide
func (p *Player) Prev() { p.navigate(func(m *Machine) bool { return m.Advance(-1) }) }

// JumpTo selects a slide, reporting false for an out of range index
func (p *Player) JumpTo(index int) bool {
	return p.navigate(func(m *Machine) bool { return m.JumpTo(index) })
}

func (p *Player) navigate(fn func(m *Machine) bool) bool {
	p.mu.Lock()
	if !fn(p.machine) {
		p.mu.Unlock()
		return false
	}
	p.publishLocked()
	return true
}

// Exit tears the session down. No tick is processed afterwards. It is a
// no-op when nothing is playing.
func (p *Player) Exit() {
	p.mu.Lock()
	if !p.liveLocked() || !p.machine.Exit() {
		p.mu.Unlock()
		return
	}
	p.finishLocked()
}

// SetDuration changes the slide duration and restarts the clock
func (p *Player) SetDuration(durationSeconds int) {
	p.mu.Lock()
	if !p.liveLocked() {
		p.mu.Unlock()
		return
	}
	p.machine.SetDuration(durationSeconds)
	p.startClockLocked()
	p.logger.Info("Slide duration changed", zap.Duration("duration", p.machine.Duration()))
	p.publishLocked()
}

// SetItems replaces the playlist and restarts the clock. An empty
// playlist ends the session.
func (p *Player) SetItems(items []domain.ResolvedItem) {
	p.mu.Lock()
	if !p.liveLocked() {
		p.mu.Unlock()
		return
	}
	p.machine.SetItems(items)
	if p.machine.Phase() == domain.PhaseExited {
		p.finishLocked()
		return
	}
	p.startClockLocked()
	p.logger.Info("Playlist replaced", zap.Int("items", p.machine.Len()))
	p.publishLocked()
}

// Frame returns the current state
func (p *Player) Frame() domain.Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.machine.Frame()
}

// Close exits and waits for the clock goroutine to return
func (p *Player) Close() {
	p.Exit()
	p.wg.Wait()
}

func (p *Player) liveLocked() bool {
	switch p.machine.Phase() {
	case domain.PhaseIdle, domain.PhaseExited:
		return false
	}
	return true
}

// finishLocked stops the clock, publishes the exit frame and runs the
// exit callback. Called with p.mu held, returns with it released.
func (p *Player) finishLocked() {
	p.stopClockLocked()
	onExit := p.onExit
	p.onExit = nil
	p.logger.Info("Playback exited")
	p.publishLocked()
	if onExit != nil {
		onExit()
	}
}

// startClockLocked replaces any running clock with a fresh one
func (p *Player) startClockLocked() {
	p.stopClockLocked()
	stop := make(chan struct{})
	t := p.newTicker(p.timing.Tick)
	p.stop = stop
	p.ticker = t

	p.wg.Add(1)
	go p.run(p.gen, t, stop)
}

func (p *Player) stopClockLocked() {
	p.gen++
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
	}
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}

func (p *Player) run(gen uint64, t Ticker, stop <-chan struct{}) {
	defer p.wg.Done()
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			p.onTick(gen)
		}
	}
}

// onTick ignores ticks from a clock that was stopped after they fired
func (p *Player) onTick(gen uint64) {
	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		return
	}
	before := p.machine.Index()
	if !p.machine.Tick(p.timing.Tick) {
		p.mu.Unlock()
		return
	}
	if after := p.machine.Index(); after != before {
		p.logger.Debug("Auto-advanced", zap.Int("from", before), zap.Int("to", after))
	}
	p.publishLocked()
}

// publishLocked hands the current frame to the renderer. Called with p.mu
// held, returns with it released; renderMu is taken before p.mu is
// dropped so frames reach the renderer in the order they were produced.
func (p *Player) publishLocked() {
	frame := p.machine.Frame()
	p.renderMu.Lock()
	p.mu.Unlock()
	defer p.renderMu.Unlock()
	p.renderer.Render(frame)
}
