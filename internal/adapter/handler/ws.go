package handler

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetingmind-team/meetingmind/errors"
	"github.com/meetingmind-team/meetingmind/internal/usecase/realtime"
)

// wsConn adapts a gorilla connection to the realtime.Conn interface. Gorilla
// connections do not allow concurrent writers, so every write goes through
// one mutex.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

// WebSocket handles the realtime meeting endpoint
type WebSocket struct {
	registry *realtime.Registry
	router   *realtime.Router
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewWebSocketHandler creates the websocket handler.
func NewWebSocketHandler(registry *realtime.Registry, router *realtime.Router, logger *zap.Logger) *WebSocket {
	return &WebSocket{
		registry: registry,
		router:   router,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				// POC mode, all origins accepted
				return true
			},
		},
		logger: logger,
	}
}

// Serve handles GET /ws/:meeting_id. Messages from one connection are
// processed serially; the loop does not read the next frame until the
// current one is fully handled.
func (h *WebSocket) Serve(c echo.Context) error {
	meetingID := c.Param("meeting_id")

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUpgradeFailed(err))
	}

	conn := &wsConn{conn: ws}
	user := realtime.UserInfo{
		UserID: c.QueryParam("user_id"),
		Name:   c.QueryParam("name"),
	}
	h.registry.Join(conn, meetingID, user)

	defer func() {
		h.registry.Leave(conn)
		ws.Close()
	}()

	ctx := c.Request().Context()
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("websocket read failed",
					zap.String("meeting_id", meetingID),
					zap.Error(err),
				)
			}
			return nil
		}
		h.router.HandleRaw(ctx, conn, data)
	}
}
