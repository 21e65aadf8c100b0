// Package server exposes the segment topology read-only over HTTP and
// WebSocket for external renderers.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	diag "github.com/coreman2200/funtimes-ledring/internal/diagnostics"
	"github.com/coreman2200/funtimes-ledring/internal/segment"
)

type Server struct {
	mu        sync.RWMutex
	topology  *segment.Topology
	startTime time.Time
	clients   map[*websocket.Conn]bool

	registry *prometheus.Registry
	lookups  *prometheus.CounterVec
}

func New(t *segment.Topology) *Server {
	s := &Server{
		topology:  t,
		startTime: time.Now(),
		clients:   map[*websocket.Conn]bool{},
		registry:  prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ledring",
			Name:      "segment_lookups_total",
			Help:      "Segment set lookups by set and result.",
		}, []string{"set", "result"}),
	}
	s.registry.MustRegister(s.lookups)
	return s
}

// Handler wires the routes.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/sets", s.HandleSets).Methods(http.MethodGet)
	r.HandleFunc("/sets/{set}", s.HandleSet).Methods(http.MethodGet)
	r.HandleFunc("/sets/{set}/{segment}", s.HandleSegment).Methods(http.MethodGet)
	r.HandleFunc("/health", s.HandleHealth).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.HandleTopologyWS)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return withCORS(r)
}

func (s *Server) HandleSets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sets": s.topology.Names()})
}

func (s *Server) HandleSet(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["set"]
	ss, err := s.lookup(name)
	if err != nil {
		writeJSON(w, statusFor(err), diag.NotFound(name, "", s.topology.Names(), err))
		return
	}
	writeJSON(w, http.StatusOK, ss.View(pixelsWanted(r)))
}

func (s *Server) HandleSegment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ss, err := s.lookup(vars["set"])
	if err != nil {
		writeJSON(w, statusFor(err), diag.NotFound(vars["set"], "", s.topology.Names(), err))
		return
	}
	seg, err := ss.Segment(vars["segment"])
	if err != nil {
		known := []string{}
		for _, sg := range ss.Segments() {
			known = append(known, sg.Name())
		}
		writeJSON(w, statusFor(err), diag.NotFound(vars["set"], vars["segment"], known, err))
		return
	}
	writeJSON(w, http.StatusOK, seg.View(true))
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	clients := len(s.clients)
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"uptime_s":  time.Since(s.startTime).Seconds(),
		"pixels":    segment.StripLen,
		"sets":      s.topology.Names(),
		"ws_client": clients,
	})
}

func (s *Server) lookup(name string) (segment.SegmentSet, error) {
	ss, err := s.topology.Set(name)
	if err != nil {
		s.lookups.WithLabelValues("unknown", "not_found").Inc()
		log.Debug().Err(err).Str("set", name).Msg("lookup failed")
		return ss, err
	}
	s.lookups.WithLabelValues(ss.Name(), "ok").Inc()
	return ss, nil
}

func pixelsWanted(r *http.Request) bool {
	return r.URL.Query().Get("pixels") == "1"
}

func statusFor(err error) int {
	if errors.Is(err, segment.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Debug().Err(err).Msg("write response")
	}
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(200)
			return
		}
		h.ServeHTTP(w, r)
	})
}
