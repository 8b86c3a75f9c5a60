// Package server exposes the climate response model over HTTP for the
// browser renderer.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/climate"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/scenario"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/sweep"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/validation"
)

// Server serves the model API.
type Server struct {
	port int
}

// New creates a server listening on the given port.
func New(port int) *Server {
	return &Server{port: port}
}

// Router builds the HTTP handler. Split from Start so tests can drive
// it through httptest.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/point", s.handlePoint).Methods(http.MethodGet)
	api.HandleFunc("/region", s.handleRegion).Methods(http.MethodGet)
	api.HandleFunc("/presets", s.handlePresets).Methods(http.MethodGet)
	api.HandleFunc("/validate", s.handleValidate).Methods(http.MethodGet)
	api.HandleFunc("/sweep", s.handleSweep).Methods(http.MethodGet)
	api.Use(instrument)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

// Start launches the HTTP server and blocks.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("climate model server starting on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) handlePoint(w http.ResponseWriter, r *http.Request) {
	in, err := inputsFromQuery(r, true)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, climate.PointTemperature(in))
}

func (s *Server) handleRegion(w http.ResponseWriter, r *http.Request) {
	in, err := inputsFromQuery(r, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, climate.RegionalTemperatures(in))
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, scenario.Presets)
}

func (s *Server) handleValidate(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, validation.ValidatePresets())
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	in, err := inputsFromQuery(r, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	seasons := 24
	if raw := r.URL.Query().Get("seasons"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 1000 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid seasons %q", raw))
			return
		}
		seasons = n
	}
	writeJSON(w, sweep.SeasonLatitude(in, seasons))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// inputsFromQuery maps query parameters onto an input record. Absent
// parameters keep the model defaults; a preset parameter applies the
// catalog entry first.
func inputsFromQuery(r *http.Request, withLatitude bool) (climate.Inputs, error) {
	in := climate.DefaultInputs()
	q := r.URL.Query()

	if name := q.Get("preset"); name != "" {
		p, err := scenario.ByName(name)
		if err != nil {
			return in, err
		}
		in.Orbit = p.Orbit
		in.Atmosphere.CO2ppm = p.CO2ppm
	}

	fields := []struct {
		key string
		dst *float64
	}{
		{"e", &in.Orbit.Eccentricity},
		{"tilt", &in.Orbit.TiltDeg},
		{"prec", &in.Orbit.PrecessionDeg},
		{"co2", &in.Atmosphere.CO2ppm},
		{"ch4", &in.Atmosphere.CH4ppb},
		{"n2o", &in.Atmosphere.N2Oppb},
		{"aod", &in.Atmosphere.AerosolOD},
		{"season", &in.Season},
		{"offset", &in.TempOffsetC},
		{"timescale", &in.TimeScaleYears},
	}
	if withLatitude {
		fields = append(fields, struct {
			key string
			dst *float64
		}{"lat", &in.LatitudeDeg})
	}

	for _, f := range fields {
		raw := q.Get(f.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return in, fmt.Errorf("invalid %s %q", f.key, raw)
		}
		*f.dst = v
	}

	if s := q.Get("sensitivity"); s != "" {
		in.Sensitivity = climate.ParseSensitivity(s)
	}
	return in, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
