package server

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	mdwerror "github.com/msto63/mdw-chronos/foundation/core/error"
	"github.com/msto63/mdw-chronos/internal/chronos/service"
	"github.com/msto63/mdw-chronos/pkg/core/config"
	coreGrpc "github.com/msto63/mdw-chronos/pkg/core/grpc"
	"github.com/msto63/mdw-chronos/pkg/core/health"
	"github.com/msto63/mdw-chronos/pkg/core/logging"
	"github.com/msto63/mdw-chronos/pkg/core/version"
	"github.com/msto63/mdw-chronos/pkg/timex"
)

// Server is the Chronos gRPC server
type Server struct {
	service      *service.Service
	grpc         *coreGrpc.Server
	health       *health.Registry
	healthServer *grpchealth.Server
	logger       *logging.Logger
	config       Config
	startTime    time.Time
}

// Ensure Server implements ChronosServer
var _ ChronosServer = (*Server)(nil)

// Config holds server configuration
type Config struct {
	Host             string
	Port             int
	EnableReflection bool
	Service          service.Config
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Host:    "0.0.0.0",
		Port:    9160,
		Service: service.DefaultConfig(),
	}
}

// ConfigFrom derives the server configuration from the application config
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Host:             cfg.Chronos.Host,
		Port:             cfg.Chronos.Port,
		EnableReflection: cfg.Chronos.EnableReflection,
		Service: service.Config{
			CacheEnabled:  cfg.Chronos.Cache.Enabled,
			CacheMaxItems: cfg.Chronos.Cache.MaxItems,
			CacheTTL:      cfg.Chronos.Cache.TTL.Duration,
			Location:      cfg.Location(),
		},
	}
}

// New creates a new Chronos server
func New(cfg Config) (*Server, error) {
	logger := logging.New("chronos-server")

	// Create service
	svc, err := service.NewService(cfg.Service)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create service").
			WithCode(mdwerror.CodeServiceInitialization).
			WithOperation("server.New")
	}

	// Create gRPC server
	grpcCfg := coreGrpc.DefaultServerConfig()
	grpcCfg.Host = cfg.Host
	grpcCfg.Port = cfg.Port
	grpcCfg.EnableReflection = cfg.EnableReflection
	grpcCfg.Logger = logger

	grpcServer := coreGrpc.NewServer(grpcCfg)

	// Create health registry
	healthRegistry := health.NewRegistry("chronos", version.Chronos)
	healthRegistry.Register(health.ProbeCheck("engine", func(ctx context.Context) error {
		_, err := svc.Resolve(ctx, []string{timex.PresentRef}, time.Time{})
		return err
	}))
	healthRegistry.RegisterFunc("cache", func(ctx context.Context) health.CheckResult {
		hits, misses, rate := svc.CacheStats()
		return health.CheckResult{
			Name:    "cache",
			Status:  health.StatusHealthy,
			Message: "parse cache operational",
			Details: map[string]interface{}{"hits": hits, "misses": misses, "hit_rate": rate},
		}
	})

	server := &Server{
		service:      svc,
		grpc:         grpcServer,
		health:       healthRegistry,
		healthServer: grpchealth.NewServer(),
		logger:       logger,
		config:       cfg,
		startTime:    time.Now(),
	}

	// Register gRPC services
	RegisterChronosServer(grpcServer.GRPCServer(), server)
	healthpb.RegisterHealthServer(grpcServer.GRPCServer(), server.healthServer)
	server.healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return server, nil
}

// Start starts the server
func (s *Server) Start() error {
	s.logger.Info("Starting Chronos server", "host", s.config.Host, "port", s.config.Port)
	return s.grpc.Start()
}

// StartAsync starts the server asynchronously
func (s *Server) StartAsync() error {
	s.logger.Info("Starting Chronos server (async)", "host", s.config.Host, "port", s.config.Port)
	return s.grpc.StartAsync()
}

// Serve serves on an existing listener
func (s *Server) Serve(listener net.Listener) error {
	return s.grpc.Serve(listener)
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Stopping Chronos server", "uptime", time.Since(s.startTime).Round(time.Second).String())
	s.healthServer.Shutdown()
	s.grpc.StopWithTimeout(ctx)
	s.service.Close()
}

// GRPCServer returns the underlying gRPC server
func (s *Server) GRPCServer() *grpc.Server {
	return s.grpc.GRPCServer()
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}

// Service returns the wrapped service
func (s *Server) Service() *service.Service {
	return s.service
}

// Address returns the listen address
func (s *Server) Address() string {
	return s.grpc.Address()
}
