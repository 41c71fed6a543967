package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/Transitx/pkg/http/router"
	"github.com/lintang-b-s/Transitx/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/Transitx/pkg/http/server"
	"github.com/lintang-b-s/Transitx/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use starts the API in the background, Wait reports how it stopped.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,
	cfg util.Config,

	journeyService controllers.JourneyService,
	stationService controllers.StationService,
) (*Server, error) {
	config := http_server.Config{
		Port:    cfg.APIPort,
		Timeout: cfg.APITimeout,
	}
	rateLimit := http_router.RateLimit{
		Enabled: cfg.UseRateLimit,
		RPS:     cfg.RateLimitRPS,
		Burst:   cfg.RateLimitBurst,
	}

	server := http_router.NewAPI(log)

	s.g.Go(func() error {
		return server.Run(
			ctx, config, log,
			rateLimit, journeyService, stationService,
		)
	})

	return s, nil
}

func (s *Server) Wait() error {
	return s.g.Wait()
}

// GracefulShutdown blocks until the process receives SIGINT or SIGTERM and returns it.
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	return <-quit
}
