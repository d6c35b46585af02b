//go:generate mockgen -source=server.go -destination=server_mock.go -package=logs
package logs

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"console/internal/app/console"
	"console/internal/app/errors"
	"console/internal/config"
	"console/internal/config/logger"
)

// Server exposes the console over a Unix socket
type Server interface {
	Start(ctx context.Context) error
	Stop() error
	SocketPath() string
}

// server implements the Server interface
type server struct {
	socketPath string
	bufferSize int
	limit      rate.Limit
	burst      int
	console    *console.Log
	receiver   *console.Receiver
	listener   net.Listener
	hub        Hub
	running    atomic.Bool
	wg         sync.WaitGroup
	connID     atomic.Int64
	cancel     context.CancelFunc
	log        logger.Logger
}

// NewServer creates a new console socket server
func NewServer(cfg *config.Config, log *console.Log, receiver *console.Receiver, appLog logger.Logger) Server {
	return &server{
		socketPath: cfg.Socket.Path,
		bufferSize: cfg.Socket.Buffer,
		limit:      rate.Limit(cfg.Socket.Rate),
		burst:      cfg.Socket.Burst,
		console:    log,
		receiver:   receiver,
		hub:        NewHub(cfg.Socket.Buffer),
		log:        appLog.WithComponent("SERVER"),
	}
}

// SocketPath returns the socket path for this server
func (s *server) SocketPath() string {
	return s.socketPath
}

// Start starts the Unix socket server
func (s *server) Start(ctx context.Context) error {
	if err := s.cleanupStaleSocket(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToCleanupSocket, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.socketPath), 0o755); err != nil {
		return fmt.Errorf("%w %s: %w", errors.ErrFailedToListenSocket, s.socketPath, err)
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("%w %s: %w", errors.ErrFailedToListenSocket, s.socketPath, err)
	}

	s.listener = listener
	s.running.Store(true)
	s.log.Info().Msgf("Server listening on %s", s.socketPath)

	serverCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	follower := NewFollower(s.console, s)
	follower.SkipExisting()

	s.wg.Add(3)

	go func() {
		defer s.wg.Done()

		s.hub.Run(serverCtx)
	}()

	go func() {
		defer s.wg.Done()

		follower.Run(serverCtx)
	}()

	go func() {
		defer s.wg.Done()

		s.acceptConnections(serverCtx)
	}()

	return nil
}

// Stop stops the server and cleans up resources
func (s *server) Stop() error {
	if !s.running.Load() {
		return nil
	}

	s.running.Store(false)

	if s.cancel != nil {
		s.cancel()
	}

	if s.listener != nil {
		s.listener.Close()
	}

	s.wg.Wait()

	if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
		s.log.Warn().Err(err).Msgf("Failed to remove socket file: %s", s.socketPath)
	}

	s.log.Info().Msg("Server stopped")

	return nil
}

// Message implements FollowHandler by forwarding new console messages to subscribers
func (s *server) Message(msg console.Message) {
	s.hub.Broadcast(toWire(msg))
}

// Cleared implements FollowHandler
func (s *server) Cleared(generation uint64) {
	s.hub.Broadcast(LogMessage{Type: MessageClear, Generation: generation})
}

// cleanupStaleSocket removes stale socket file if not in use
func (s *server) cleanupStaleSocket() error {
	if _, err := os.Stat(s.socketPath); os.IsNotExist(err) {
		return nil
	}

	conn, err := net.DialTimeout("unix", s.socketPath, config.SocketDialTimeout)
	if err == nil {
		conn.Close()

		return fmt.Errorf("%w: %s", errors.ErrSocketAlreadyInUse, s.socketPath)
	}

	s.log.Info().Msgf("Removing stale socket: %s", s.socketPath)

	return os.Remove(s.socketPath)
}

// acceptConnections handles incoming client connections.
// Repeated accept failures back off up to SocketAcceptBackoffMax.
func (s *server) acceptConnections(ctx context.Context) {
	var delay time.Duration

	for s.running.Load() {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.running.Load() {
				return
			}

			delay = nextAcceptDelay(delay)
			s.log.Error().Err(err).Msgf("Failed to accept connection, retrying in %s", delay)

			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}

			continue
		}

		delay = 0

		s.wg.Add(1)

		go func(c net.Conn) {
			defer s.wg.Done()

			s.handleConnection(ctx, c)
		}(conn)
	}
}

func nextAcceptDelay(prev time.Duration) time.Duration {
	if prev == 0 {
		return config.SocketAcceptBackoff
	}

	return min(prev*2, config.SocketAcceptBackoffMax)
}

// handleConnection reads the hello line and hands the connection to its role
func (s *server) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	clientID := fmt.Sprintf("client-%d", s.connID.Add(1))

	s.log.Debug().Msgf("Client connected: %s", clientID)

	reader := bufio.NewReader(conn)

	line, err := reader.ReadBytes('\n')
	if err != nil {
		s.log.Error().Err(err).Msgf("Failed to read from client %s", clientID)
		return
	}

	var req HelloRequest
	if err := json.Unmarshal(line, &req); err != nil {
		s.log.Error().Err(err).Msgf("Failed to parse hello from %s", clientID)
		return
	}

	if req.Type != MessageHello {
		s.log.Error().Err(fmt.Errorf("%w: got %q", errors.ErrUnexpectedHandshake, req.Type)).Msgf("Rejected client %s", clientID)
		return
	}

	switch req.Role {
	case RolePublish:
		s.servePublisher(ctx, clientID, reader)
	case RoleSubscribe:
		s.serveSubscriber(ctx, clientID, conn)
	default:
		s.log.Error().Err(fmt.Errorf("%w: unknown role %q", errors.ErrUnexpectedHandshake, req.Role)).Msgf("Rejected client %s", clientID)
	}
}

// servePublisher appends every message line to the console, paced by a per-connection limiter
func (s *server) servePublisher(ctx context.Context, clientID string, reader *bufio.Reader) {
	limiter := rate.NewLimiter(s.limit, s.burst)

	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			if waitErr := limiter.Wait(ctx); waitErr != nil {
				return
			}

			s.publish(clientID, line)
		}

		if err != nil {
			s.log.Debug().Msgf("Publisher %s disconnected", clientID)
			return
		}
	}
}

func (s *server) publish(clientID string, line []byte) {
	var msg LogMessage
	if err := json.Unmarshal(line, &msg); err != nil {
		s.log.Warn().Err(err).Msgf("Dropping malformed line from %s", clientID)
		return
	}

	switch msg.Type {
	case MessageText:
		s.receiver.Receive(msg.Text)
	case MessageClear:
		s.console.Clear()
	default:
		s.log.Warn().Msgf("Unexpected %s message from publisher %s", msg.Type, clientID)
	}
}

// serveSubscriber sends the status and stored messages, then every change until the client leaves
func (s *server) serveSubscriber(ctx context.Context, clientID string, conn net.Conn) {
	client := NewClientConn(clientID, s.bufferSize)
	s.hub.Register(client)

	defer s.hub.Unregister(client)

	lastSeq := s.console.Seq()
	snapshot, generation := s.console.Tail(0)

	status := StatusMessage{
		Type:     MessageStatus,
		Version:  config.Version,
		Messages: len(snapshot),
		Capacity: s.console.Capacity(),
	}

	if err := s.write(conn, status); err != nil {
		s.log.Debug().Err(err).Msgf("Client %s disconnected", clientID)
		return
	}

	for _, msg := range snapshot {
		if err := s.write(conn, toWire(msg)); err != nil {
			s.log.Debug().Err(err).Msgf("Client %s disconnected", clientID)
			return
		}

		lastSeq = max(lastSeq, msg.Seq)
	}

	s.log.Debug().Msgf("Client %s subscribed", clientID)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-client.SendChan:
			if !ok {
				return
			}

			if msg.Type == MessageText && msg.Seq <= lastSeq {
				continue
			}

			if msg.Type == MessageClear && msg.Generation <= generation {
				continue
			}

			if err := s.write(conn, msg); err != nil {
				s.log.Debug().Err(err).Msgf("Client %s disconnected", clientID)
				return
			}
		}
	}
}

func (s *server) write(conn net.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToMarshalMessage, err)
	}

	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteSocket, err)
	}

	return nil
}

func toWire(msg console.Message) LogMessage {
	return LogMessage{
		Type:      MessageText,
		Seq:       msg.Seq,
		Timestamp: msg.Timestamp,
		Text:      msg.Text,
	}
}
