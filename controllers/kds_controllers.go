package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/booking-board/kds"
	"github.com/yeremiapane/booking-board/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Sesuaikan dengan kebutuhan keamanan
	},
}

// KDSHandler -> endpoint WebSocket untuk layar display
func KDSHandler(c *gin.Context) {
	role := c.Param("role")

	// Validasi role display
	if role != "board" && role != "kitchen" && role != "dashboard" {
		utils.RespondError(c, http.StatusForbidden, ErrUnknownRole)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	// Register dengan role
	kds.RegisterClient(ws, role)

	// Baca pesan (jika perlu)
	for {
		_, _, err := ws.ReadMessage()
		if err != nil {
			break
		}
	}

	// Unregister saat disconnect
	kds.UnregisterClient(ws)
}
