package components

import "time"

// UI timing constants
const (
	// BlinkTickInterval drives the activity indicator while it is animating
	BlinkTickInterval = 50 * time.Millisecond
	BlinkTicksPerSecond = int(time.Second / BlinkTickInterval)
)

// Layout constants
const (
	HeaderHeight         = 1
	FooterHeight         = 2
	PaneTitleHeight      = 1
	MinPaneHeight        = 3
	DefaultViewportWidth = 80
	MinMessageWidth      = 20

	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)
