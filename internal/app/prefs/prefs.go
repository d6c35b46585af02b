package prefs

// TimestampMode controls the prefix rendered before each message
type TimestampMode int32

const (
	TimestampNone TimestampMode = iota
	TimestampTime
	TimestampDateAndTime
)

// EdgeStyle controls the border drawn around a pane
type EdgeStyle int32

const (
	EdgeNone EdgeStyle = iota
	EdgeSunken
	EdgeGrey
)

// Preferences holds the display options of one pane
type Preferences struct {
	EdgeStyle           EdgeStyle
	HideTrailingNewline bool
	TimestampMode       TimestampMode
}

// Defaults returns the preferences used when nothing has been persisted yet
func Defaults() Preferences {
	return Preferences{
		EdgeStyle:           EdgeNone,
		HideTrailingNewline: true,
		TimestampMode:       TimestampTime,
	}
}

// Valid reports whether m is a known mode
func (m TimestampMode) Valid() bool {
	return m >= TimestampNone && m <= TimestampDateAndTime
}

// Next cycles to the following mode
func (m TimestampMode) Next() TimestampMode {
	return (m + 1) % (TimestampDateAndTime + 1)
}

// String returns a display name for the mode
func (m TimestampMode) String() string {
	switch m {
	case TimestampNone:
		return "None"
	case TimestampTime:
		return "Time"
	case TimestampDateAndTime:
		return "Date and time"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is a known style
func (s EdgeStyle) Valid() bool {
	return s >= EdgeNone && s <= EdgeGrey
}

// Next cycles to the following style
func (s EdgeStyle) Next() EdgeStyle {
	return (s + 1) % (EdgeGrey + 1)
}

// String returns a display name for the style
func (s EdgeStyle) String() string {
	switch s {
	case EdgeNone:
		return "None"
	case EdgeSunken:
		return "Sunken"
	case EdgeGrey:
		return "Grey"
	default:
		return "Unknown"
	}
}
