package services

import (
	"github.com/nikhilpktcr/dietPlanner/models"
)

var realtimeHub *RealtimeHub

// InitRealtime wires the websocket hub into the services layer. Tests can
// leave it uninitialized; emits become no-ops.
func InitRealtime(hub *RealtimeHub) {
	realtimeHub = hub
}

func emitBMILogCreated(logRow *models.BMILog) {
	if realtimeHub == nil || logRow == nil {
		return
	}
	realtimeHub.BroadcastToUser(logRow.UserID, map[string]any{
		"kind": "bmiLog.created",
		"log":  logRow,
	})
}
