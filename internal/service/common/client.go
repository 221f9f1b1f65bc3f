//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/oshokin/wake-gate/internal/config"
	pb "github.com/oshokin/wake-gate/internal/pb/v1"
)

// Client wraps the gRPC AlarmService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the wake-gate server.
	conn *grpc.ClientConn
	// api is the generated AlarmService client interface.
	api pb.AlarmServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActorRequired is returned when an actor is not provided but is required for the operation.
	errActorRequired = errors.New("actor must be provided")
	// errEmptyUsername is returned when neither the user database nor the environment names the user.
	errEmptyUsername = errors.New("username is empty")
)

const (
	// healthInitialBackoff is the first pause between health probes.
	healthInitialBackoff = 200 * time.Millisecond
	// healthMaxBackoff caps the pause between health probes.
	healthMaxBackoff = time.Second
)

// Dial establishes a gRPC connection to the wake-gate server.
// Note: this uses insecure transport credentials; the server binds to
// loopback by default.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial wake-gate server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewAlarmServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// Schedule arms the alarm for the next hour:minute.
func (c *Client) Schedule(ctx context.Context, actor *pb.SystemActor, hour, minute int) (*pb.AlarmState, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.ScheduleRequest{
		Actor:  actor,
		Hour:   int32(hour),   //nolint:gosec // Range-checked by the server.
		Minute: int32(minute), //nolint:gosec // Range-checked by the server.
	}

	response, err := c.api.Schedule(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}

	return response, nil
}

// Cancel clears the alarm.
func (c *Client) Cancel(ctx context.Context, actor *pb.SystemActor) (*pb.AlarmState, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.Cancel(callCtx, &pb.CancelRequest{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf("cancel: %w", err)
	}

	return response, nil
}

// SnoozeNow snoozes a ringing alarm.
func (c *Client) SnoozeNow(ctx context.Context, actor *pb.SystemActor) (*pb.AlarmState, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.SnoozeNow(callCtx, &pb.SnoozeNowRequest{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf("snooze: %w", err)
	}

	return response, nil
}

// Tap taps a tile by identity.
func (c *Client) Tap(ctx context.Context, actor *pb.SystemActor, tileID string) (*pb.AlarmState, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.Tap(callCtx, &pb.TapRequest{Actor: actor, TileId: tileID})
	if err != nil {
		return nil, fmt.Errorf("tap: %w", err)
	}

	return response, nil
}

// GetState retrieves the current alarm state.
func (c *Client) GetState(ctx context.Context, actor *pb.SystemActor) (*pb.AlarmState, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.GetState(callCtx, &pb.GetStateRequest{RequestingActor: actor})
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}

	return response, nil
}

// ListSessions retrieves up to limit journal sessions, newest first.
func (c *Client) ListSessions(ctx context.Context, limit int) (*pb.SessionJournal, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.ListSessions(callCtx, &pb.ListSessionsRequest{Limit: int32(limit)}) //nolint:gosec // CLI flag.
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return response, nil
}

// WatchEvents calls handle for every streamed event until ctx ends or the
// stream fails. The call timeout does not apply to the stream.
func (c *Client) WatchEvents(ctx context.Context, actor *pb.SystemActor, handle func(*pb.Event)) error {
	stream, err := c.api.WatchEvents(ctx, &pb.WatchEventsRequest{RequestingActor: actor})
	if err != nil {
		return fmt.Errorf("watch events: %w", err)
	}

	for {
		event, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("receive event: %w", err)
		}

		handle(event)
	}
}

// WaitForHealth blocks until the server health check reports SERVING or the context ends.
func (c *Client) WaitForHealth(ctx context.Context, logf func(string, ...any)) error {
	healthClient := grpc_health_v1.NewHealthClient(c.conn)
	backoff := healthInitialBackoff

	for {
		callCtx, cancel := c.callContext(ctx)
		response, err := healthClient.Check(callCtx, &grpc_health_v1.HealthCheckRequest{
			Service: pb.AlarmService_ServiceDesc.ServiceName,
		})

		cancel()

		if err == nil && response.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING {
			return nil
		}

		if logf != nil {
			if err != nil {
				logf("Waiting for server health: %v", err)
			} else {
				logf("Waiting for server health: status %s", response.GetStatus().String())
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for server health: %w", ctx.Err())
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, healthMaxBackoff)
	}
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
