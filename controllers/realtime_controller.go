package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/nikhilpktcr/dietPlanner/services"
)

type RealtimeController struct {
	RT *services.RealtimeHub
}

func NewRealtimeController(rt *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{RT: rt}
}

// keepaliveInterval sits under common proxy idle timeouts (nginx defaults
// to 60s).
const keepaliveInterval = 25 * time.Second

var upgrader = websocket.Upgrader{
	// auth already ran; origin checks belong to the reverse proxy
	CheckOrigin: func(r *http.Request) bool { return true },
}

// BmiLogsWS upgrades the request and streams bmiLog.created events for the
// authenticated user until the client disconnects.
func (rc *RealtimeController) BmiLogsWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{UserID: uid, Conn: conn}
	rc.RT.Register(cl)

	go func() {
		t := time.NewTicker(keepaliveInterval)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.RT.Unregister(cl)
				return
			}
		}
	}()

	// clients never send anything meaningful; the read loop only exists to
	// detect the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
