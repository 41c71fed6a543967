package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port    int
	Timeout time.Duration
}

// New returns an http.Server on config.Port whose handlers run under ctx.
// handler is wrapped so each request is cut off after config.Timeout.
func New(ctx context.Context, handler http.Handler, config Config, keepAlivesDisabled bool) *http.Server {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: http.TimeoutHandler(handler, config.Timeout, `{"error":{"code":"TIMEOUT","message":"request timed out"}}`),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},

		ReadTimeout:       viper.GetDuration("HTTP_SERVER_READ_TIMEOUT"),
		WriteTimeout:      config.Timeout + viper.GetDuration("HTTP_SERVER_WRITE_TIMEOUT"),
		IdleTimeout:       viper.GetDuration("HTTP_SERVER_IDLE_TIMEOUT"),
		ReadHeaderTimeout: viper.GetDuration("HTTP_SERVER_READ_HEADER_TIMEOUT"),
	}
	srv.SetKeepAlivesEnabled(!keepAlivesDisabled)
	return srv
}
