package http

import (
	"net/http"
	"strings"
)

// RouterConfig wires handlers into the router. Nil handlers leave their
// routes unregistered.
type RouterConfig struct {
	Ping      *PingHandler
	Locations *LocationHandler
	Bookables *BookableHandler
	Bookings  *BookingHandler
}

// NewRouter builds the /v1 route table.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	if cfg.Ping != nil {
		mux.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Ping.Ping(w, r)
		})
	}

	if cfg.Locations != nil {
		mux.HandleFunc("/v1/location", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Locations.List(w, r)
		})
		mux.HandleFunc("/v1/location/", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			routeLocationSubtree(cfg, w, r)
		})
	}

	if cfg.Bookings != nil {
		mux.HandleFunc("/v1/booking", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Bookings.List(w, r)
			case http.MethodPost:
				cfg.Bookings.Create(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/v1/booking/", func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimPrefix(r.URL.Path, "/v1/booking/")
			if id == "" || strings.Contains(id, "/") {
				http.NotFound(w, r)
				return
			}
			ctx := ContextWithBookingID(r.Context(), id)
			r = r.WithContext(ctx)
			switch r.Method {
			case http.MethodGet:
				cfg.Bookings.Get(w, r)
			case http.MethodDelete:
				cfg.Bookings.Delete(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodDelete)
			}
		})
	}

	return mux
}

// routeLocationSubtree dispatches /v1/location/{id}[/bookable[/{id}]].
func routeLocationSubtree(cfg RouterConfig, w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/v1/location/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		ctx := ContextWithLocationID(r.Context(), parts[0])
		cfg.Locations.Get(w, r.WithContext(ctx))
	case len(parts) == 2 && parts[1] == "bookable":
		if cfg.Bookables == nil {
			http.NotFound(w, r)
			return
		}
		ctx := ContextWithLocationID(r.Context(), parts[0])
		cfg.Bookables.List(w, r.WithContext(ctx))
	case len(parts) == 3 && parts[1] == "bookable":
		if cfg.Bookables == nil {
			http.NotFound(w, r)
			return
		}
		ctx := ContextWithLocationID(r.Context(), parts[0])
		ctx = ContextWithBookableID(ctx, parts[2])
		cfg.Bookables.Get(w, r.WithContext(ctx))
	default:
		http.NotFound(w, r)
	}
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
