package feed

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"carsharex/internal/pkg/response"
)

type Handler struct {
	hub *Hub
	log *logrus.Logger

	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, log *logrus.Logger) *Handler {
	return &Handler{
		hub: hub,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/feed", h.Subscribe)
}

// Subscribe upgrades the request and keeps the connection registered until
// the client goes away. The read loop only exists to detect the close.
func (h *Handler) Subscribe(c *gin.Context) {
	employeeID := c.GetInt64("employee_id")

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "Websocket upgrade failed")
		return
	}

	h.hub.Register(employeeID, conn)
	h.log.WithField("employee_id", employeeID).Info("feed subscriber connected")

	go func() {
		defer func() {
			h.hub.Unregister(employeeID)
			h.log.WithField("employee_id", employeeID).Info("feed subscriber disconnected")
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
