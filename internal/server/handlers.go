package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/spock-lang/spock"
	"github.com/spock-lang/spock/internal/audit"
)

type evaluateRequest struct {
	Source string `json:"source"`
}

type evaluateResponse struct {
	Result string `json:"result"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	requestID := RequestIDFromContext(r.Context())
	keyID := keyIDFromContext(r.Context())

	result, serr := spock.Analyze(req.Source)

	entry := audit.Entry{
		RequestID: requestID,
		KeyID:     keyID,
		Source:    req.Source,
		Result:    result,
		CreatedAt: time.Now(),
	}
	if serr != nil {
		entry.Stage = string(serr.Stage)
		entry.Message = serr.Message
	}
	if err := s.deps.Audit.Record(r.Context(), entry); err != nil {
		s.deps.Logger.Error("failed to record audit entry", zap.Error(err))
	}

	if serr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(serr)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(evaluateResponse{Result: result})
}
