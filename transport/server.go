package transport

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"duskcrawl/decide"
)

// DecideRequest is the body of POST /decide. RequestID is optional; the
// server mints one with uuid.New if the caller omits it, so every decision
// is traceable even from a client that doesn't bother generating one.
type DecideRequest struct {
	RequestID string      `json:"request_id,omitempty"`
	State     RunStateDTO `json:"state"`
}

// DecideResponse is the body returned by POST /decide.
type DecideResponse struct {
	RequestID string    `json:"request_id"`
	Action    ActionDTO `json:"action"`
}

// Server wraps a decide.Decider behind a single HTTP endpoint: decode the
// JSON snapshot, call the engine, encode the JSON action. It registers on
// its own ServeMux rather than the default one.
type Server struct {
	decider *decide.Decider
}

// NewServer builds a Server around the given Decider.
func NewServer(d *decide.Decider) *Server {
	return &Server{decider: d}
}

// Handler returns the http.Handler exposing POST /decide.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/decide", s.handleDecide)
	return mux
}

func (s *Server) handleDecide(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	state := FromDTO(req.State)
	action := s.decider.Decide(state)

	resp := DecideResponse{RequestID: requestID, Action: ActionToDTO(action)}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode response: "+err.Error(), http.StatusInternalServerError)
	}
}
