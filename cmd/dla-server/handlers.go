package main

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type statsResponse struct {
	Particles              int     `json:"particles"`
	SeedParticles          int     `json:"seed_particles"`
	SpawnDiameter          int     `json:"spawn_diameter"`
	MaxX                   int     `json:"max_x"`
	MaxY                   int     `json:"max_y"`
	MaxZ                   int     `json:"max_z"`
	MaxRadiusSquared       int     `json:"max_radius_squared"`
	Stickiness             float64 `json:"stickiness"`
	MeanSteps              float64 `json:"mean_steps"`
	MeanBoundaryCollisions float64 `json:"mean_boundary_collisions"`
	Stalled                bool    `json:"stalled"`
	Done                   bool    `json:"done"`
	Clients                int     `json:"clients"`
}

// GET /stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	agg := s.world.Aggregate()
	resp := statsResponse{
		Particles:        agg.Len() - agg.SeedLen(),
		SeedParticles:    agg.SeedLen(),
		SpawnDiameter:    agg.SpawnDiameter(),
		MaxX:             agg.MaxX(),
		MaxY:             agg.MaxY(),
		MaxZ:             agg.MaxZ(),
		MaxRadiusSquared: agg.MaxRadiusSquared(),
		Stickiness:       agg.Stickiness(),
		Stalled:          s.world.Stalled(),
		Done:             s.world.Done(),
	}
	resp.MeanSteps, resp.MeanBoundaryCollisions = meansOf(agg.RequiredSteps(), agg.BoundaryCollisions())
	s.mu.RUnlock()
	resp.Clients = s.hub.ClientCount()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "cannot encode: "+err.Error(), http.StatusInternalServerError)
	}
}

func meansOf(steps, bcolls []uint64) (float64, float64) {
	if len(steps) == 0 {
		return 0, 0
	}
	var sumSteps, sumBcolls uint64
	for i := range steps {
		sumSteps += steps[i]
		sumBcolls += bcolls[i]
	}
	n := float64(len(steps))
	return float64(sumSteps) / n, float64(sumBcolls) / n
}

type particleJSON struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	Z    int  `json:"z"`
	Seed bool `json:"seed"`
}

// GET /particles
func (s *Server) handleParticles(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	agg := s.world.Aggregate()
	seedLen := agg.SeedLen()
	out := make([]particleJSON, agg.Len())
	for i := range out {
		p := agg.ParticleAt(i)
		out[i] = particleJSON{X: p.X, Y: p.Y, Z: p.Z, Seed: i < seedLen}
	}
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		http.Error(w, "cannot encode: "+err.Error(), http.StatusInternalServerError)
	}
}

// GET /ws
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	upgrader := s.hub.Upgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnf("websocket upgrade failed: %v", err)
		return
	}
	s.hub.RegisterClient(conn)
	s.logger.Debugf("websocket client connected: %s", conn.RemoteAddr())

	// drain the connection until the client goes away
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.hub.UnregisterClient(conn)
				s.logger.Debugf("websocket client disconnected: %s", conn.RemoteAddr())
				return
			}
		}
	}()
}
