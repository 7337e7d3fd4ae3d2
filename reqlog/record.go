package reqlog

import (
	"time"
)

//easyjson:json
type Record struct {
	ID         string    `json:"id"`
	RemoteAddr string    `json:"remoteAddr"`
	Payload    string    `json:"payload"`
	ReceivedAt time.Time `json:"receivedAt"`
}
