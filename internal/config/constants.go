package config

import "time"

// app constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	ConfigFile = "console.yaml"
	EnvFile    = ".env"
	EnvPrefix  = "CONSOLE"

	AppName        = "console"
	AppDescription = "rolling diagnostics console with throttled multi-pane viewers"
	Version        = "0.3.0"
)

// console constants
const (
	DefaultCapacity = 200
	DefaultThrottle = 250 * time.Millisecond
	DefaultPanes    = 1
	MaxPanes        = 6
	MonitorInterval = 2 * time.Second
)

// socket constants
const (
	SocketDir         = "/tmp"
	SocketName        = "console.sock"
	SocketDialTimeout = 500 * time.Millisecond
	SocketBufferSize  = 256

	SocketAcceptBackoff    = 5 * time.Millisecond
	SocketAcceptBackoffMax = time.Second

	DefaultIngestRate  = 500.0
	DefaultIngestBurst = 100
)

// settings constants
const (
	SettingsDirName  = "console"
	SettingsFileName = "settings.yaml"
	SettingsPattern  = "*.yaml"
	SettingsDebounce = 150 * time.Millisecond
)

// service constants
const (
	ShutdownTimeout = 5 * time.Second
	SentryFlush     = 2 * time.Second
)
