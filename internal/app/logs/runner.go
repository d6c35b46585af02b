//go:generate mockgen -source=runner.go -destination=runner_mock.go -package=logs
package logs

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"console/internal/app/console"
)

// Runner implements the client-side commands against a running console
type Runner interface {
	Tail(socketPath string) int
	Send(socketPath string, args []string, stdin io.Reader) int
	Clear(socketPath string) int
}

type runner struct {
	client Client
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a new logs runner
func NewRunner(client Client) Runner {
	return &runner{client: client, stdout: os.Stdout, stderr: os.Stderr}
}

// Tail streams the console contents and every change until interrupted
func (r *runner) Tail(socketPath string) int {
	if err := r.open(socketPath, RoleSubscribe); err != nil {
		return r.fail(err)
	}

	defer r.client.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := r.client.Stream(ctx, r.stdout); err != nil {
		return r.fail(err)
	}

	return 0
}

// Send publishes the joined args as one message, or the whole of stdin when no args are given
func (r *runner) Send(socketPath string, args []string, stdin io.Reader) int {
	text := strings.Join(args, " ")

	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return r.fail(err)
		}

		text = console.Decode(data)
	}

	if err := r.open(socketPath, RolePublish); err != nil {
		return r.fail(err)
	}

	defer r.client.Close()

	if err := r.client.Send(text); err != nil {
		return r.fail(err)
	}

	return 0
}

// Clear empties the console
func (r *runner) Clear(socketPath string) int {
	if err := r.open(socketPath, RolePublish); err != nil {
		return r.fail(err)
	}

	defer r.client.Close()

	if err := r.client.Clear(); err != nil {
		return r.fail(err)
	}

	return 0
}

func (r *runner) open(socketPath string, role Role) error {
	path, err := FindSocket(socketPath)
	if err != nil {
		return err
	}

	if err := r.client.Connect(path); err != nil {
		return err
	}

	if err := r.client.Hello(role); err != nil {
		r.client.Close()
		return err
	}

	return nil
}

func (r *runner) fail(err error) int {
	fmt.Fprintf(r.stderr, "Error: %v\n", err)

	return 1
}
