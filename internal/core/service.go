// Package core holds the controller that owns the VPN configuration list.
package core

import (
	"sync"

	"github.com/ubahwin/vpnman/internal/logger"
	"github.com/ubahwin/vpnman/internal/scutil"
)

// Status is the payload published to the UI on every state change.
type Status struct {
	// Configurations is a snapshot; the receiver must not mutate it.
	Configurations []scutil.Configuration
	// AnyConnected is the global indicator: true when at least one
	// configuration is connected.
	AnyConnected bool
}

// StatusListener is a callback invoked when the configuration set changes.
type StatusListener func(status *Status)

// Service owns the configuration snapshot and maps user actions to
// scutil invocations. All UI updates flow through the status listener;
// nothing else reaches into the snapshot.
type Service struct {
	mu       sync.RWMutex
	runner   scutil.Runner
	configs  []scutil.Configuration
	listener StatusListener
}

// NewService creates a controller on top of the given runner.
func NewService(runner scutil.Runner) *Service {
	return &Service{runner: runner}
}

// SetStatusListener sets a callback that will be called on every change
// to the configuration set.
func (s *Service) SetStatusListener(listener StatusListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = listener
}

// Refresh replaces the configuration snapshot wholesale from a fresh
// `scutil --nc list`. On failure the previous snapshot stays in place.
func (s *Service) Refresh() error {
	out, err := s.runner.List()
	if err != nil {
		return err
	}

	configs, err := scutil.ParseList(out)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.configs = configs
	s.mu.Unlock()

	logger.Info("listing refreshed: %d configuration(s)", len(configs))
	s.publish()
	return nil
}

// Status returns the current snapshot.
func (s *Service) Status() *Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statusLocked()
}

func (s *Service) statusLocked() *Status {
	st := &Status{
		Configurations: make([]scutil.Configuration, len(s.configs)),
	}
	copy(st.Configurations, s.configs)
	for _, c := range s.configs {
		if c.Connected {
			st.AnyConnected = true
			break
		}
	}
	return st
}

// publish sends the current snapshot to the listener.
func (s *Service) publish() {
	s.mu.RLock()
	listener := s.listener
	st := s.statusLocked()
	s.mu.RUnlock()

	if listener != nil {
		listener(st)
	}
}
