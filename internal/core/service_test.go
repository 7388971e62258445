package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubahwin/vpnman/internal/scutil"
)

// stubRunner fakes the scutil process boundary.
type stubRunner struct {
	listOut  string
	listErr  error
	startErr error
	stopErr  error
	started  []string
	stopped  []string
}

func (s *stubRunner) List() (string, error) {
	return s.listOut, s.listErr
}

func (s *stubRunner) Start(name string) (string, error) {
	s.started = append(s.started, name)
	return "", s.startErr
}

func (s *stubRunner) Stop(name string) (string, error) {
	s.stopped = append(s.stopped, name)
	return "", s.stopErr
}

const listing = `* (Disconnected) AAAA-1 IKEv2 VPN "Office"` + "\n" +
	`* (Connected) BBBB-2 IPSec VPN "Home"` + "\n"

func TestRefreshReplacesSnapshot(t *testing.T) {
	runner := &stubRunner{listOut: listing}
	svc := NewService(runner)

	var published []*Status
	svc.SetStatusListener(func(status *Status) {
		published = append(published, status)
	})

	require.NoError(t, svc.Refresh())
	require.Len(t, published, 1)
	require.Len(t, published[0].Configurations, 2)
	assert.True(t, published[0].AnyConnected)

	// Wholesale replacement, no merging with the previous set.
	runner.listOut = `* (Disconnected) CCCC-3 IKEv2 VPN "New"` + "\n"
	require.NoError(t, svc.Refresh())
	require.Len(t, published, 2)
	require.Len(t, published[1].Configurations, 1)
	assert.Equal(t, "CCCC-3", published[1].Configurations[0].ID)
	assert.False(t, published[1].AnyConnected)
}

func TestRefreshFailureKeepsPreviousSnapshot(t *testing.T) {
	runner := &stubRunner{listOut: listing}
	svc := NewService(runner)
	require.NoError(t, svc.Refresh())

	runner.listErr = fmt.Errorf("scutil --nc list: exit status 1")
	require.Error(t, svc.Refresh())
	assert.Len(t, svc.Status().Configurations, 2, "previous set stays in place")

	runner.listErr = nil
	runner.listOut = "garbage vpn line\n"
	err := svc.Refresh()
	require.Error(t, err)
	var parseErr *scutil.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Len(t, svc.Status().Configurations, 2)
}

func TestStatusSnapshotIsACopy(t *testing.T) {
	svc := NewService(&stubRunner{listOut: listing})
	require.NoError(t, svc.Refresh())

	st := svc.Status()
	st.Configurations[0].Connected = true
	assert.False(t, svc.Status().Configurations[0].Connected)
}

func TestAnyConnectedRecomputedOnEveryPublish(t *testing.T) {
	runner := &stubRunner{listOut: `* (Disconnected) AAAA-1 IKEv2 VPN "Office"` + "\n"}
	svc := NewService(runner)

	var last *Status
	svc.SetStatusListener(func(status *Status) { last = status })

	require.NoError(t, svc.Refresh())
	assert.False(t, last.AnyConnected)

	require.NoError(t, svc.Toggle("AAAA-1"))
	assert.True(t, last.AnyConnected, "indicator follows the toggle publish, not only refreshes")
}
