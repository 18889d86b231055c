package controllers

import (
	"net/http"

	"fitness-backend/middlewares"
	"fitness-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RefreshWS upgrades the connection and hands it to the refresh hub,
// which keeps it registered until the client goes away.
func RefreshWS(c *gin.Context) {
	session := middlewares.SessionFrom(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	services.Refresh.Serve(services.NewWSClient(session.UserID, conn))
}
