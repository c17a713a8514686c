package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/cosmodumplings/cosmo-pos/kds"
	"github.com/cosmodumplings/cosmo-pos/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Displays connect from kiosk devices on the local network; origin
	// enforcement happens at the token layer instead.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type KDSController struct {
	Hub *kds.Hub
}

func NewKDSController(hub *kds.Hub) *KDSController {
	return &KDSController{Hub: hub}
}

// HandleWebSocket upgrades the connection and parks it in the hub. The read
// loop exists only to detect disconnects; displays never send data.
func (kc *KDSController) HandleWebSocket(c *gin.Context) {
	role := "display"
	if r, exists := c.Get("role"); exists {
		if s, ok := r.(string); ok && s != "" {
			role = s
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade failed: %v", err)
		return
	}

	id := kc.Hub.RegisterClient(conn, role)
	utils.InfoLogger.Printf("display %s connected (%s), %d attached", id, role, kc.Hub.ClientCount())

	go func() {
		defer func() {
			kc.Hub.UnregisterClient(id)
			utils.InfoLogger.Printf("display %s disconnected, %d attached", id, kc.Hub.ClientCount())
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
