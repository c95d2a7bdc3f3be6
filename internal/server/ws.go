package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/nexivibe/spider/internal/engine"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewWSHandler gives every websocket connection its own session.
func NewWSHandler(settings Settings, clock engine.Clock, logger *zap.Logger) http.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("ws upgrade", zap.Error(err))
			return
		}
		defer conn.Close()

		session := NewSession(settings, clock, logger)
		session.HandleConnection(conn)
	}
}
