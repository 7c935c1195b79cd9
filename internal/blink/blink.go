// Package blink drives a text cursor's blink with bubbletea ticks.
//
// Each scheduled tick carries the owner's ID and the epoch it was scheduled
// under. Start, Reset and Stop bump the epoch, so a tick already in flight
// arrives stale and is dropped instead of needing to be cancelled.
package blink

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/xonecas/textfield/internal/constants"
)

// Msg toggles the cursor of the blinker with the matching ID.
type Msg struct {
	ID    string
	Epoch uint64
}

// Blink is the blink state of one cursor. The zero value is not usable; call
// New.
type Blink struct {
	id       string
	interval time.Duration
	visible  bool
	epoch    uint64
	closed   bool
}

// New returns a stopped blinker with a visible cursor. A non-positive
// interval selects constants.BlinkInterval.
func New(interval time.Duration) *Blink {
	if interval <= 0 {
		interval = constants.BlinkInterval
	}
	return &Blink{
		id:       uuid.NewString(),
		interval: interval,
		visible:  true,
	}
}

// ID identifies the blinker's messages.
func (b *Blink) ID() string { return b.id }

// Visible reports whether the cursor should be drawn.
func (b *Blink) Visible() bool { return b.visible }

// Interval returns the phase length.
func (b *Blink) Interval() time.Duration { return b.interval }

// SetInterval changes the phase length. Takes effect on the next tick.
func (b *Blink) SetInterval(d time.Duration) {
	if d > 0 {
		b.interval = d
	}
}

// Start shows the cursor and begins blinking under a fresh epoch.
func (b *Blink) Start() tea.Cmd {
	if b.closed {
		return nil
	}
	b.visible = true
	b.epoch++
	return b.tick()
}

// Reset restarts the blink phase, keeping the cursor solid while the user
// is typing or selecting.
func (b *Blink) Reset() tea.Cmd {
	return b.Start()
}

// Stop halts blinking and leaves the cursor visible.
func (b *Blink) Stop() {
	b.epoch++
	b.visible = true
}

// Close tears the blinker down. Every message already scheduled, and any
// later Start, is ignored.
func (b *Blink) Close() {
	b.closed = true
	b.epoch++
}

// Update handles a tick. Ticks for another blinker, from an older epoch, or
// arriving after Close are dropped without rescheduling.
func (b *Blink) Update(msg Msg) tea.Cmd {
	if b.closed || msg.ID != b.id || msg.Epoch != b.epoch {
		return nil
	}
	b.visible = !b.visible
	return b.tick()
}

func (b *Blink) tick() tea.Cmd {
	id, epoch := b.id, b.epoch
	return tea.Tick(b.interval, func(time.Time) tea.Msg {
		return Msg{ID: id, Epoch: epoch}
	})
}
