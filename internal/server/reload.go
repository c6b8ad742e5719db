package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const reloadPath = "/__verdant/reload"

// reloadSnippet is the dev-mode client injected before </body>. It
// reconnects with a short backoff so server restarts self-heal.
const reloadSnippet = `<script>
(() => {
  const connect = () => {
    const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "` + reloadPath + `");
    ws.onmessage = () => location.reload();
    ws.onclose = () => setTimeout(connect, 1000);
  };
  connect();
})();
</script>
`

// reloadHub tracks live-reload sockets and broadcasts to them when the
// watcher reports a change.
type reloadHub struct {
	logger  *slog.Logger
	origins []string

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newReloadHub(allowedOrigins []string, logger *slog.Logger) *reloadHub {
	return &reloadHub{
		logger:  logger,
		origins: allowedOrigins,
		conns:   make(map[*websocket.Conn]struct{}),
	}
}

func (h *reloadHub) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close(websocket.StatusNormalClosure, "")
	}()

	// Reads are only awaited to notice disconnects; clients never send.
	ctx := r.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

// broadcast tells every connected client to reload.
func (h *reloadHub) broadcast(ctx context.Context) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	for _, c := range conns {
		if err := c.Write(writeCtx, websocket.MessageText, []byte("reload")); err != nil {
			h.logger.Debug("reload write failed", "error", err)
		}
	}
}
