package main

import (
	"context"
	"sync"
	"time"

	"droplet/internal/core"
	dlasim "droplet/internal/sims/dla"
	"droplet/internal/stream"
)

// Server owns the growing aggregate. All access to the world goes through
// its mutex; the growth loop is the only writer.
type Server struct {
	mu     sync.RWMutex
	world  *dlasim.World
	target int

	pacer  *core.FixedStep
	hub    *stream.Broadcaster
	logger *Logger

	seq int
}

// NewServer builds the world from the model options and prepares the
// broadcaster.
func NewServer(cfg ServerConfig, logger *Logger) *Server {
	simCfg := dlasim.FromMap(cfg.Model)
	world := dlasim.New(simCfg)

	seed := simCfg.Engine.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	world.Reset(seed)
	logger.Infof("world ready: %dx%d raster, seed %d, rate %d", simCfg.Width, simCfg.Height, seed, simCfg.Rate)

	return &Server{
		world:  world,
		target: simCfg.Target,
		pacer:  core.NewFixedStep(cfg.TPS),
		hub:    stream.NewBroadcaster(),
		logger: logger,
	}
}

// Run drives the growth loop until the context is cancelled.
func (s *Server) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !s.pacer.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		s.tick(ctx)
	}
}

// tick advances the world one step and publishes the resulting stick events.
func (s *Server) tick(ctx context.Context) {
	s.mu.Lock()
	agg := s.world.Aggregate()
	before := agg.Len()
	s.world.Step()
	var events []stream.StickEvent
	steps := agg.RequiredSteps()
	bcolls := agg.BoundaryCollisions()
	seedLen := agg.SeedLen()
	for i := before; i < agg.Len(); i++ {
		p := agg.ParticleAt(i)
		stuck := i - seedLen
		s.seq++
		events = append(events, stream.StickEvent{
			Seq:                s.seq,
			X:                  p.X,
			Y:                  p.Y,
			Z:                  p.Z,
			Steps:              steps[stuck],
			BoundaryCollisions: bcolls[stuck],
			Done:               stuck + 1,
			Total:              s.target,
		})
	}
	stalled := s.world.Stalled()
	done := s.world.Done()
	s.mu.Unlock()

	for _, event := range events {
		if err := s.hub.Publish(ctx, event); err != nil {
			s.logger.Warnf("dropping stick event %d: %v", event.Seq, err)
		}
	}
	if stalled {
		s.logger.Warnf("growth stalled: walker exhausted its step budget")
	}
	if done && len(events) > 0 {
		s.logger.Infof("target reached after %d particles", s.seq)
	}
}

// Close shuts the broadcaster down.
func (s *Server) Close() error {
	return s.hub.Close()
}
