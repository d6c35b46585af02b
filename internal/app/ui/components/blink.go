package components

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	empty = "○"
	full  = "●"

	// Spring physics parameters
	blinkAngularFrequency = 9.0
	blinkDampingRatio     = 0.6

	// Ticks the indicator is held lit before it fades
	blinkHoldTicks = 3

	blinkFrameThreshold  = 0.35
	blinkSettleThreshold = 0.01

	blinkPositionFull  = 1.0
	blinkPositionEmpty = 0.0
)

// Blink is a short spring-driven pulse shown next to a pane title when new content is drawn
type Blink struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
	ticks    int
	active   bool
}

// NewBlink creates an idle indicator
func NewBlink() *Blink {
	return &Blink{
		spring: harmonica.NewSpring(harmonica.FPS(BlinkTicksPerSecond), blinkAngularFrequency, blinkDampingRatio),
	}
}

// Trigger starts a pulse, restarting it when one is already running
func (b *Blink) Trigger() {
	b.active = true
	b.target = blinkPositionFull
	b.ticks = 0
}

// Stop ends the pulse and resets the indicator
func (b *Blink) Stop() {
	b.active = false
	b.target = blinkPositionEmpty
	b.position = blinkPositionEmpty
	b.velocity = 0
	b.ticks = 0
}

// Update advances the animation by one tick and reports whether it is still running
func (b *Blink) Update() bool {
	if !b.active {
		return false
	}

	b.ticks++

	if b.ticks >= blinkHoldTicks {
		b.target = blinkPositionEmpty
	}

	b.position, b.velocity = b.spring.Update(b.position, b.velocity, b.target)

	if b.target == blinkPositionEmpty &&
		math.Abs(b.position) < blinkSettleThreshold &&
		math.Abs(b.velocity) < blinkSettleThreshold {
		b.Stop()
	}

	return b.active
}

// Frame returns the glyph for the current spring position
func (b *Blink) Frame() string {
	if !b.active || b.position < blinkFrameThreshold {
		return empty
	}

	return full
}

// Render returns the styled frame
func (b *Blink) Render(style lipgloss.Style) string {
	return style.Render(b.Frame())
}

// IsActive returns whether the pulse is running
func (b *Blink) IsActive() bool {
	return b.active
}
