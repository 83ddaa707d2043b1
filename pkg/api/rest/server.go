package rest

import (
	"net"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	v0_rest "github.com/meower-media/notify/pkg/api/rest/v0"
	"github.com/rs/cors"
)

var realIPHeader = os.Getenv("REAL_IP_HEADER")

// Router builds the HTTP API. events, when not nil, is mounted on /events.
func Router(svc v0_rest.Service, events http.Handler) *chi.Mux {
	r := chi.NewRouter()

	// CORS middleware
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"OPTIONS", "GET", "PATCH"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler)

	// IP address middleware
	r.Use(func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if realIPHeader != "" {
				r.RemoteAddr = r.Header.Get(realIPHeader)
			} else if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
				r.RemoteAddr = host
			}
			h.ServeHTTP(w, r)
		})
	})

	// Mount routers
	if events != nil {
		r.Mount("/events", events)
	}
	r.Mount("/", v0_rest.Router(svc)) // default
	r.Mount("/v0", v0_rest.Router(svc))

	return r
}
