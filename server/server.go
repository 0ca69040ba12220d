// Package server exposes the calculator over HTTP and WebSocket.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"go.creack.net/deriv/calculator"
	"go.creack.net/deriv/config"
)

type Server struct {
	cfg      *config.Config
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

func New(cfg *config.Config) *Server {
	s := &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return cfg.OriginAllowed(r.Header.Get("Origin"))
			},
		},
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /derive", s.handleDerive)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe blocks until the listener fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.mux,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}
	log.Printf("[SERVER] Listening on %s.", s.cfg.Addr)
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n")) // Best effort.
}

func (s *Server) handleDerive(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req calculator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[HTTP] %s: invalid request from %s: %s.", id, r.RemoteAddr, err)
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeJSON(w, status, calculator.Response{
			ID:     id,
			Var:    calculator.DefaultVar,
			Result: calculator.ErrorOutput,
			Error:  &calculator.ErrorInfo{Kind: "InvalidRequest", Message: err.Error()},
		})
		return
	}

	resp := s.answer(id, req)
	status := http.StatusOK
	if resp.Error != nil {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied.
		log.Printf("[WEBSOCKET] Upgrade from %s failed: %s.", r.RemoteAddr, err)
		return
	}
	defer func() { _ = conn.Close() }() // Best effort.
	conn.SetReadLimit(s.cfg.MaxBodyBytes)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				log.Printf("[WEBSOCKET] Unexpected close for client %s: %s.", conn.RemoteAddr(), err)
			}
			return
		}

		id := uuid.NewString()
		var req calculator.Request
		var resp calculator.Response
		if err := json.Unmarshal(message, &req); err != nil {
			log.Printf("[WEBSOCKET] %s: invalid JSON from client %s: %s.", id, conn.RemoteAddr(), err)
			resp = calculator.Response{
				ID:     id,
				Var:    calculator.DefaultVar,
				Result: calculator.ErrorOutput,
				Error:  &calculator.ErrorInfo{Kind: "InvalidRequest", Message: err.Error()},
			}
		} else {
			resp = s.answer(id, req)
		}
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("[WEBSOCKET] Write to client %s failed: %s.", conn.RemoteAddr(), err)
			return
		}
	}
}

// answer runs req and tags the response with a fresh id unless the client
// sent one.
func (s *Server) answer(id string, req calculator.Request) calculator.Response {
	if req.ID == "" {
		req.ID = id
	}
	resp := calculator.Handle(req)
	if resp.Error != nil {
		log.Printf("[CALC] %s: d/d%s %q: %s.", resp.ID, resp.Var, req.Expr, resp.Error.Message)
	} else {
		log.Printf("[CALC] %s: d/d%s %q = %q.", resp.ID, resp.Var, req.Expr, resp.Result)
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] Write response failed: %s.", err)
	}
}
