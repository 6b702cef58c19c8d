package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToWatchers(disruptionID string, msgType string, payload interface{})
	BroadcastToAll(msgType string, payload interface{})
}
