package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	diag "github.com/coreman2200/funtimes-ledring/internal/diagnostics"
	"github.com/coreman2200/funtimes-ledring/internal/segment"
)

// Request is what a WebSocket client sends to ask for one set.
type Request struct {
	Set     string `json:"set"`
	Segment string `json:"segment,omitempty"`
	Pixels  bool   `json:"pixels,omitempty"`
}

type topologyMsg struct {
	Pixels int               `json:"pixels"`
	Apex   int               `json:"apex"`
	Sets   []segment.SetView `json:"sets"`
}

// HandleTopologyWS sends the whole topology on connect, then answers
// Requests until the client goes away.
func (s *Server) HandleTopologyWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	s.send(conn, topologyMsg{Pixels: segment.StripLen, Apex: segment.ApexPixel, Sets: s.topology.View(false)})
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			s.send(conn, diag.Diagnostic{Severity: diag.Warn, Code: diag.CodeBadRequest, Summary: "Malformed request", Detail: err.Error()})
			continue
		}
		s.send(conn, s.answer(req))
	}
}

func (s *Server) answer(req Request) any {
	ss, err := s.lookup(req.Set)
	if err != nil {
		return diag.NotFound(req.Set, "", s.topology.Names(), err)
	}
	if req.Segment == "" {
		return ss.View(req.Pixels)
	}
	seg, err := ss.Segment(req.Segment)
	if err != nil {
		return diag.NotFound(req.Set, req.Segment, nil, err)
	}
	return seg.View(true)
}

func (s *Server) send(conn *websocket.Conn, v any) {
	b, _ := json.Marshal(v)
	conn.SetWriteDeadline(time.Now().Add(time.Second))
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		log.Debug().Err(err).Msg("write topology")
	}
}
