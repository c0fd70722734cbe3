package main

import (
	"context"
	"sync"
	"time"

	"openbox/internal/core"
	"openbox/internal/sandbox"
	"openbox/internal/stream"
)

// Server owns the headless world, the frame broadcaster and the lock that
// serializes HTTP commands against the tick loop. Placement and control
// commands only ever touch the grid between ticks.
type Server struct {
	world    *sandbox.World
	bcast    *stream.Broadcaster
	logger   *Logger
	savePath string
	tps      int

	mu sync.Mutex
}

// NewServer creates a server around an already-reset world.
func NewServer(world *sandbox.World, cfg ServerConfig, logger *Logger) *Server {
	return &Server{
		world:    world,
		bcast:    stream.NewBroadcaster(),
		logger:   logger,
		savePath: cfg.SavePath,
		tps:      cfg.TPS,
	}
}

// Run drives the fixed-rate tick loop until the context is cancelled.
// Every tick a frame is captured under the world lock and broadcast to
// the websocket clients.
func (s *Server) Run(ctx context.Context) {
	step := core.NewFixedStep(s.tps)
	s.logger.Infof("tick loop running at %d tps", s.tps)

	for ctx.Err() == nil {
		if !step.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}

		s.mu.Lock()
		if !s.world.Paused() {
			s.world.Step()
		}
		frame := stream.NewFrame(s.world)
		s.mu.Unlock()

		if s.bcast.ClientCount() == 0 {
			continue
		}
		data, err := frame.JSON()
		if err != nil {
			s.logger.Errorf("encode frame: %v", err)
			continue
		}
		if err := s.bcast.Broadcast(data); err != nil {
			s.logger.Warnf("broadcast: %v", err)
		}
	}

	s.logger.Infof("tick loop stopped")
}

// Close shuts down the broadcaster.
func (s *Server) Close() error {
	return s.bcast.Close()
}
