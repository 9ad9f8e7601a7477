// Evaluation over a persistent connection, so a REPL-style client can
// submit one program after another without paying a new TLS handshake
// per request. The teacher's internal/web/websocket/hub.go ran a
// multi-room chat hub with broadcast fan-out; Spock's stream endpoint
// is single-client request/response, so it talks directly to
// gorilla/websocket rather than carrying the hub's registration
// channels and room map, which have nothing to attach to here.
//
// handleStream evaluates each submitted program through
// spock.AnalyzeStream, writing one evaluateResponse message per line as
// the engine reduces it rather than buffering the whole program's output
// into a single message.
package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/spock-lang/spock"
	"github.com/spock-lang/spock/internal/audit"
	"github.com/spock-lang/spock/internal/errs"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.deps.Logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	requestID := RequestIDFromContext(r.Context())
	keyID := keyIDFromContext(r.Context())

	for {
		var req evaluateRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.deps.Logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		var lines []string
		var writeFailed bool
		serr := spock.AnalyzeStream(req.Source, func(line string) *errs.SpockError {
			lines = append(lines, line)
			if err := conn.WriteJSON(evaluateResponse{Result: line}); err != nil {
				writeFailed = true
				return errs.NewRuntimeError(err.Error())
			}
			return nil
		})

		entry := audit.Entry{RequestID: requestID, KeyID: keyID, Source: req.Source, Result: strings.Join(lines, "")}
		if serr != nil {
			entry.Stage = string(serr.Stage)
			entry.Message = serr.Message
		}
		if err := s.deps.Audit.Record(r.Context(), entry); err != nil {
			s.deps.Logger.Error("failed to record audit entry", zap.Error(err))
		}

		if writeFailed {
			return
		}
		if serr != nil {
			if err := conn.WriteJSON(serr); err != nil {
				return
			}
		}
	}
}
