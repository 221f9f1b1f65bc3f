package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mitchellh/go-ps"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	api "github.com/oshokin/wake-gate/internal/api/grpc/alarm"
	"github.com/oshokin/wake-gate/internal/config"
	"github.com/oshokin/wake-gate/internal/logger"
	pb "github.com/oshokin/wake-gate/internal/pb/v1"
	"github.com/oshokin/wake-gate/internal/platform/audio"
	"github.com/oshokin/wake-gate/internal/platform/mixer"
	repository "github.com/oshokin/wake-gate/internal/repository/journal"
	"github.com/oshokin/wake-gate/internal/service/engine"
	"github.com/oshokin/wake-gate/internal/service/journal"
	"github.com/oshokin/wake-gate/internal/service/power"
	"github.com/oshokin/wake-gate/internal/version"
)

// Options controls the wake-gate-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// JournalFile overrides the journal path from settings.
	JournalFile string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the engine and the gRPC server and blocks until ctx is canceled or serving fails.
//
//nolint:funlen // Process wiring reads best top to bottom.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "wake-gate-server")

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if level, ok := logger.ParseLogLevel(settings.LogLevel); ok {
		logger.SetLevel(level)
	}

	journalFile := settings.JournalFile
	if opts.JournalFile != "" {
		journalFile = opts.JournalFile
	}

	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	if others := otherInstances(); len(others) > 0 {
		logger.WarnKV(ctx, "Another wake-gate-server seems to be running", "pids", others)
	}

	deps := engine.Dependencies{
		Sound:  settings.Sound.Settings(),
		Volume: settings.Volume.Settings(),
	}

	output := openOutput(ctx, settings.Sound.Backend)
	if output != nil {
		defer func() {
			if closeErr := output.Close(); closeErr != nil {
				logger.WarnKV(ctx, "Failed to close sound output", "error", closeErr)
			}
		}()

		deps.Primary = output.Primary()
		deps.Secondary = output.Secondary()
	}

	effector, err := mixer.Open(ctx, settings.Volume.Backend)
	switch {
	case err != nil:
		logger.WarnKV(ctx, "Volume control unavailable, ringing at the current volume", "error", err)
	case effector != nil:
		defer func() { _ = effector.Close() }()

		deps.Effector = effector
	}

	eng := engine.New(ctx, deps)
	repo := repository.NewFileRepository(journalFile, repository.DefaultMaxSessions)

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterAlarmServiceServer(grpcServer, api.NewServer(eng, repo))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(pb.AlarmService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	wg.Go(func() { eng.Run(ctx) })
	wg.Go(func() {
		if recErr := journal.NewRecorder(ctx, repo).Run(ctx, eng); recErr != nil {
			logger.ErrorKV(ctx, "Journal recorder stopped", "error", recErr)
		}
	})

	if settings.InhibitSleep {
		wg.Go(func() { power.NewInhibitor(ctx, nil).Run(ctx, eng) })
	}

	logger.InfoKV(ctx, "Wake-gate server listening",
		append([]any{"listen_address", listenAddress, "journal_file", journalFile}, version.Fields()...)...)

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		cancel()
		wg.Wait()

		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	wg.Wait()
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// openOutput returns nil when sound is disabled or no device is available.
func openOutput(ctx context.Context, backend string) *audio.Output {
	if backend == "none" {
		logger.Info(ctx, "Sound disabled, alarms will ring silently")

		return nil
	}

	output, err := audio.Open(ctx)
	if err != nil {
		logger.WarnKV(ctx, "Sound output unavailable, alarms will ring silently", "error", err)

		return nil
	}

	return output
}

// otherInstances returns PIDs of other processes running the same executable.
func otherInstances() []int {
	self, err := os.Executable()
	if err != nil {
		return nil
	}

	name := filepath.Base(self)

	processList, err := ps.Processes()
	if err != nil {
		return nil
	}

	thisProcessID := os.Getpid()

	var pids []int

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if !strings.EqualFold(process.Executable(), name) {
			continue
		}

		pids = append(pids, process.Pid())
	}

	return pids
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise keeps configAddr as is,
// so the default 127.0.0.1 binding stays loopback-only.
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	if _, _, err := net.SplitHostPort(configAddr); err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	return configAddr, nil
}
