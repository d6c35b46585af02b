package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidCapacity     = errors.New("console capacity must be greater than 0")
	ErrInvalidThrottle     = errors.New("console throttle must not be negative")
	ErrInvalidPanes        = errors.New("invalid number of panes")
	ErrSocketPathRequired  = errors.New("socket path is required")
	ErrInvalidSocketBuffer = errors.New("socket buffer must be greater than 0")
	ErrInvalidIngestRate   = errors.New("socket rate and burst must be greater than 0")

	ErrFailedToReadSettings  = errors.New("failed to read settings file")
	ErrFailedToWriteSettings = errors.New("failed to write settings file")

	ErrFailedToCleanupSocket  = errors.New("failed to cleanup stale socket")
	ErrFailedToListenSocket   = errors.New("failed to listen on socket")
	ErrSocketAlreadyInUse     = errors.New("socket is already in use by another console")
	ErrFailedToConnectSocket  = errors.New("failed to connect to console socket")
	ErrFailedToMarshalMessage = errors.New("failed to marshal message")
	ErrFailedToWriteSocket    = errors.New("failed to write to socket")
	ErrFailedToReadSocket     = errors.New("failed to read from socket")
	ErrUnexpectedHandshake    = errors.New("unexpected handshake")
	ErrNoInstanceRunning      = errors.New("no running console found")
	ErrEmptyMessage           = errors.New("message is empty after normalization")

	ErrFailedToCopy      = errors.New("failed to copy to clipboard")
	ErrInvalidArguments  = errors.New("invalid arguments")
	ErrFailedToRunUI     = errors.New("failed to run console UI")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
