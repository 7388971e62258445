package core

import (
	"fmt"

	"github.com/ubahwin/vpnman/internal/logger"
	"github.com/ubahwin/vpnman/internal/scutil"
)

// Toggle connects a disconnected configuration or disconnects a connected
// one. On command failure the record is left untouched and the error is
// returned for the caller to surface. On success the record's flag is
// flipped immediately; the caller is expected to Refresh afterwards to
// reconcile with the authoritative listing.
func (s *Service) Toggle(id string) error {
	s.mu.RLock()
	cfg, ok := s.findLocked(id)
	s.mu.RUnlock()

	if !ok {
		return fmt.Errorf("unknown configuration id %s", id)
	}

	var err error
	if cfg.Connected {
		logger.Toggle("stopping %q", cfg.Name)
		_, err = s.runner.Stop(cfg.Name)
	} else {
		logger.Toggle("starting %q", cfg.Name)
		_, err = s.runner.Start(cfg.Name)
	}
	if err != nil {
		logger.Error("toggle of %q failed: %v", cfg.Name, err)
		return err
	}

	// Optimistic flip so the menu reacts without waiting for a re-query.
	// Two rapid toggles of the same item can race; last writer wins.
	s.mu.Lock()
	for i := range s.configs {
		if s.configs[i].ID == id {
			s.configs[i].Connected = !cfg.Connected
			break
		}
	}
	s.mu.Unlock()

	s.publish()
	return nil
}

func (s *Service) findLocked(id string) (scutil.Configuration, bool) {
	for i := range s.configs {
		if s.configs[i].ID == id {
			return s.configs[i], true
		}
	}
	return scutil.Configuration{}, false
}
