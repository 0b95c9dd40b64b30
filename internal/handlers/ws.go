package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/starplayground/PersonalityBankPro/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleRunSocket godoc
// @Summary      WebSocket connection for run updates
// @Description  Connect via WebSocket to receive run progress, completion and profile-ready events
// @Tags         websocket
// @Param        id path int true "User assessment ID"
// @Router       /ws/user-assessments/{id} [get]
func (h *WSHandler) HandleRunSocket(c *gin.Context) {
	runID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user assessment id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	rid := uint(runID)
	h.hub.AddConnection(rid, conn)
	defer h.hub.RemoveConnection(rid, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
