package main

import (
	"encoding/json"
	"net/http"

	"openbox/internal/core"
	"openbox/internal/stream"
)

// stateResponse is the JSON body of GET /state.
type stateResponse struct {
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Tick     uint64         `json:"tick"`
	Paused   bool           `json:"paused"`
	Symmetry bool           `json:"symmetry"`
	Counts   map[string]int `json:"counts"`
}

// placeRequest is the JSON body of POST /place. An empty kind erases.
type placeRequest struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Kind   string `json:"kind"`
	Radius int    `json:"radius"`
}

type resetRequest struct {
	Seed int64 `json:"seed"`
}

type paramRequest struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Routes builds the HTTP mux for the server.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/state", s.handleState)
	mux.HandleFunc("/place", s.handlePlace)
	mux.HandleFunc("/pause", s.handlePause)
	mux.HandleFunc("/resume", s.handleResume)
	mux.HandleFunc("/reset", s.handleReset)
	mux.HandleFunc("/save", s.handleSave)
	mux.HandleFunc("/load", s.handleLoad)
	mux.HandleFunc("/param", s.handleParam)
	mux.HandleFunc("/frame", s.handleFrame)
	mux.Handle("/ws", s.bcast)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	size := s.world.Size()
	resp := stateResponse{
		Width:    size.W,
		Height:   size.H,
		Tick:     s.world.Tick(),
		Paused:   s.world.Paused(),
		Symmetry: s.world.Symmetry(),
		Counts:   make(map[string]int),
	}
	for i := range s.world.Grid().Cells() {
		c := &s.world.Grid().Cells()[i]
		if c.Kind != core.Empty {
			resp.Counts[c.Kind.String()]++
		}
	}
	s.mu.Unlock()

	writeJSON(w, resp)
}

func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req placeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid place json: "+err.Error(), http.StatusBadRequest)
		return
	}
	kind := core.Empty
	if req.Kind != "" {
		parsed, ok := core.ParseKind(req.Kind)
		if !ok {
			http.Error(w, "unknown kind: "+req.Kind, http.StatusBadRequest)
			return
		}
		kind = parsed
	}
	if req.Radius < 0 || req.Radius > 20 {
		http.Error(w, "radius must be in [0,20]", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.world.Paint(req.X, req.Y, kind, req.Radius)
	s.mu.Unlock()

	s.logger.Debugf("placed %s at (%d,%d) r=%d", kind, req.X, req.Y, req.Radius)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	s.setPaused(w, r, true)
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	s.setPaused(w, r, false)
}

func (s *Server) setPaused(w http.ResponseWriter, r *http.Request, paused bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	s.world.SetPaused(paused)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req resetRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid reset json: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	s.mu.Lock()
	s.world.Reset(req.Seed)
	s.mu.Unlock()

	s.logger.Infof("grid reset (seed %d)", req.Seed)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	err := s.world.SaveFile(s.savePath)
	s.mu.Unlock()
	if err != nil {
		s.logger.Errorf("save: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	err := s.world.LoadFile(s.savePath)
	s.mu.Unlock()
	if err != nil {
		s.logger.Errorf("load: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleParam(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req paramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid param json: "+err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	ok := s.world.SetFloatParameter(req.Key, req.Value)
	s.mu.Unlock()
	if !ok {
		http.Error(w, "unknown parameter: "+req.Key, http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleFrame serves a single frame snapshot for clients that do not hold
// a websocket open.
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	frame := stream.NewFrame(s.world)
	s.mu.Unlock()
	writeJSON(w, frame)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
