package websocket

import (
	"net/http"
	"strings"

	ws "github.com/coder/websocket"

	"github.com/stocksavvy/stocksavvy/internal/auth"
)

// HandleWebSocket returns an HTTP handler that upgrades authenticated
// connections to WebSocket and runs them as Hub clients. The token is read
// from the Authorization header or, for browser clients that cannot set
// headers on a WebSocket handshake, from the token query parameter.
func HandleWebSocket(hub *Hub, jwtSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenStr := r.URL.Query().Get("token")
		if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
			tokenStr = strings.TrimPrefix(header, "Bearer ")
		}

		claims, err := auth.ValidateToken(jwtSecret, tokenStr)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := ws.Accept(w, r, nil)
		if err != nil {
			hub.logger.Error("accept websocket", "error", err)
			return
		}

		client := NewClient(hub, conn, claims.UserID)
		client.Run(r.Context())
	}
}
