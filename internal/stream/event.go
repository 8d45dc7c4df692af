package stream

import "encoding/json"

// StickEvent describes one walker sticking to the cluster. Seq numbers
// events within a run so clients can detect gaps.
type StickEvent struct {
	Seq                int    `json:"seq"`
	X                  int    `json:"x"`
	Y                  int    `json:"y"`
	Z                  int    `json:"z"`
	Steps              uint64 `json:"steps"`
	BoundaryCollisions uint64 `json:"boundary_collisions"`
	Done               int    `json:"done"`
	Total              int    `json:"total"`
}

// JSON encodes the event as a websocket text frame payload.
func (e StickEvent) JSON() ([]byte, error) {
	return json.Marshal(e)
}
