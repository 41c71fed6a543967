package routerhelper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouteGroupPaths(t *testing.T) {
	testCases := []struct {
		prefix string
		p      string
		want   string
	}{
		{prefix: "/api", p: "/journeys", want: "/api/journeys"},
		{prefix: "/api/", p: "stations", want: "/api/stations"},
		{prefix: "/api", p: "/stations/", want: "/api/stations/"},
	}

	for _, tt := range testCases {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRouteGroup(httprouter.New(), tt.prefix).path(tt.p))
		})
	}
}

func TestRouteGroupServes(t *testing.T) {
	router := httprouter.New()
	api := NewRouteGroup(router, "/api").Group("/v1")
	api.GET("/ping", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
