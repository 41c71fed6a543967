package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/Transitx/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/Transitx/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/Transitx/pkg/http/server"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "net/http/pprof"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// RateLimit configures the Limit middleware, it is left out of the chain when disabled.
type RateLimit struct {
	Enabled bool
	RPS     float64
	Burst   int
}

//	@title			Transitx API
//	@version		1.0
//	@description	Public transport journey planner over precomputed pareto profiles.

//	@contact.name	Lintang Birda Saputra
//	@contact.url	_
//	@contact.email	lintang.birda.saputra@mail.ugm.ac.id

//	@license.name	BSD License
//	@license.url	https://opensource.org/license/bsd-2-clause

// @host		localhost
// @BasePath	/api
func (api *API) Handler(
	log *zap.Logger,
	rateLimit RateLimit,
	journeyService controllers.JourneyService,
	stationService controllers.StationService,
) http.Handler {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(notFound)

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	router.GET("/doc/*any", swaggerHandler)

	router.Handler(http.MethodGet, "/debug/pprof/*item", http.DefaultServeMux)

	group := router_helper.NewRouteGroup(router, "/api")

	transitRoutes := controllers.New(journeyService, stationService, log)

	transitRoutes.Routes(group)

	mwChain := []alice.Constructor{corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(log), Labels}
	if rateLimit.Enabled {
		mwChain = append(mwChain, Limit(rateLimit.RPS, rateLimit.Burst))
	}
	return alice.New(mwChain...).Then(router)
}

// Run serves the API until ctx is canceled or the server fails.
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	log *zap.Logger,

	rateLimit RateLimit,
	journeyService controllers.JourneyService,
	stationService controllers.StationService,
) error {
	log.Info("Run httprouter API")

	mainMwChain := api.Handler(log, rateLimit, journeyService, stationService)

	srv := http_server.New(ctx, mainMwChain, config, false)
	log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		log.Info("HTTP server stopped", zap.Error(err))
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		log.Info("Context canceled, shutting down server")
		_ = srv.Shutdown(context.Background())
		return ctx.Err()
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
