package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/wordsearch/internal/common"
	"github.com/dmitrijs2005/wordsearch/internal/logging"
	"github.com/dmitrijs2005/wordsearch/internal/server/live"
	"github.com/gorilla/websocket"
)

type LiveHandler struct {
	upgrader websocket.Upgrader
	logger   logging.Logger
}

func NewLiveHandler(l logging.Logger) *LiveHandler {
	return &LiveHandler{
		upgrader: websocket.Upgrader{
			// browsers on any origin may connect
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: l.With("module", "live"),
	}
}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Upgrade writes its own response and ignores w.Header().
	hdr := http.Header{common.RequestIDHeaderName: {RequestIDFromContext(r.Context())}}
	conn, err := h.upgrader.Upgrade(w, r, hdr)
	if err != nil {
		// Upgrade has already written the error response.
		h.logger.Warn(r.Context(), "websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s := live.NewSession(conn, h.logger.With("request_id", RequestIDFromContext(r.Context())))
	if err := s.Run(r.Context()); err != nil {
		h.logger.Info(r.Context(), "live session ended", "session_id", s.ID, "reason", err)
	}
}
