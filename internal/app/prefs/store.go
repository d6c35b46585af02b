package prefs

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.yaml.in/yaml/v3"

	"console/internal/app/errors"
)

// Theme holds the colours shared by every pane. Empty values use the terminal default.
type Theme struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Accent     string `yaml:"accent"`
}

// DefaultTheme returns the built-in colours
func DefaultTheme() Theme {
	return Theme{
		Border: "8",
		Accent: "#7D56F4",
	}
}

// lastUsed is the YAML shape of the process-wide defaults for new panes
type lastUsed struct {
	EdgeStyle           EdgeStyle     `yaml:"edge_style"`
	HideTrailingNewline bool          `yaml:"hide_trailing_newline"`
	TimestampMode       TimestampMode `yaml:"timestamp_mode"`
}

// settingsFile is the on-disk document
type settingsFile struct {
	Last   lastUsed `yaml:"last"`
	Theme  Theme    `yaml:"theme"`
	Layout struct {
		Panes []string `yaml:"panes"`
	} `yaml:"layout"`
}

// Store persists last-used preferences, the theme and the pane layout
type Store struct {
	mu     sync.RWMutex
	path   string
	last   Preferences
	theme  Theme
	layout [][]byte
}

// NewStore creates a store backed by the file at path. Nothing is read until Load.
func NewStore(path string) *Store {
	return &Store{
		path:  path,
		last:  Defaults(),
		theme: DefaultTheme(),
	}
}

// Path returns the settings file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file. A missing file leaves the defaults in place.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("%w: %w", errors.ErrFailedToReadSettings, err)
	}

	doc := s.defaultDocument()
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToReadSettings, err)
	}

	last := Preferences{
		EdgeStyle:           doc.Last.EdgeStyle,
		HideTrailingNewline: doc.Last.HideTrailingNewline,
		TimestampMode:       doc.Last.TimestampMode,
	}

	if !last.EdgeStyle.Valid() {
		last.EdgeStyle = Defaults().EdgeStyle
	}

	if !last.TimestampMode.Valid() {
		last.TimestampMode = Defaults().TimestampMode
	}

	layout := make([][]byte, 0, len(doc.Layout.Panes))

	for _, encoded := range doc.Layout.Panes {
		record, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			continue
		}

		layout = append(layout, record)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = last
	s.theme = doc.Theme
	s.layout = layout

	return nil
}

// Last returns the defaults for a newly opened pane
func (s *Store) Last() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.last
}

// SetLast records p as the defaults for new panes and persists it
func (s *Store) SetLast(p Preferences) error {
	s.mu.Lock()
	s.last = p
	s.mu.Unlock()

	return s.save()
}

// Theme returns the current colours
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.theme
}

// Layout returns the persisted pane preferences, decoded on top of the last-used defaults
func (s *Store) Layout() []Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Preferences, len(s.layout))
	for i, record := range s.layout {
		out[i] = Decode(record, s.last)
	}

	return out
}

// SetLayout persists the preferences of every open pane, in order
func (s *Store) SetLayout(panes []Preferences) error {
	layout := make([][]byte, len(panes))
	for i, p := range panes {
		layout[i] = Encode(p)
	}

	s.mu.Lock()
	s.layout = layout
	s.mu.Unlock()

	return s.save()
}

func (s *Store) defaultDocument() settingsFile {
	defaults := Defaults()

	doc := settingsFile{
		Last: lastUsed{
			EdgeStyle:           defaults.EdgeStyle,
			HideTrailingNewline: defaults.HideTrailingNewline,
			TimestampMode:       defaults.TimestampMode,
		},
		Theme: DefaultTheme(),
	}

	return doc
}

// save writes the document through a temp file so readers never see a partial file
func (s *Store) save() error {
	s.mu.RLock()

	doc := settingsFile{
		Last: lastUsed{
			EdgeStyle:           s.last.EdgeStyle,
			HideTrailingNewline: s.last.HideTrailingNewline,
			TimestampMode:       s.last.TimestampMode,
		},
		Theme: s.theme,
	}

	for _, record := range s.layout {
		doc.Layout.Panes = append(doc.Layout.Panes, base64.StdEncoding.EncodeToString(record))
	}

	s.mu.RUnlock()

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteSettings, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteSettings, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".settings-*")
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteSettings, err)
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteSettings, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteSettings, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteSettings, err)
	}

	return nil
}
