// Package ui provides the menu-bar UI for vpnman.
package ui

import (
	"fmt"
	"sync"

	"fyne.io/systray"

	"github.com/ubahwin/vpnman/internal/config"
	"github.com/ubahwin/vpnman/internal/core"
	"github.com/ubahwin/vpnman/internal/loginitem"
	"github.com/ubahwin/vpnman/internal/logger"
	"github.com/ubahwin/vpnman/internal/scutil"
	"github.com/ubahwin/vpnman/internal/sysinfo"
)

// maxSlots bounds the number of configuration rows in the menu. systray
// can only append items, so the rows are pre-created and recycled.
const maxSlots = 16

var (
	service *core.Service
	prefs   *config.Manager

	// Systray menu items
	mStatus  *systray.MenuItem
	mRefresh *systray.MenuItem
	mLogin   *systray.MenuItem
	mOpenLog *systray.MenuItem
	mQuit    *systray.MenuItem

	slotMu sync.Mutex
	slots  []*systray.MenuItem
	shown  []scutil.Configuration // configuration behind each visible row
)

// Run starts the menu-bar application. Blocks until quit.
func Run() {
	logger.Init()
	logger.ClearLogs()
	logger.Info("vpnman starting (darwin %s)", sysinfo.OSRelease())

	prefs = config.NewManager(config.GetConfigPath())
	if err := prefs.Load(); err != nil {
		logger.Error("failed to load preferences: %v", err)
	}

	// A user can delete the launch agent plist behind our back; the
	// persisted preference follows what is actually installed.
	reconcileLoginPreference(prefs, loginitem.Enabled())

	service = core.NewService(scutil.NewCommandRunner())
	service.SetStatusListener(func(status *core.Status) {
		updateUI(status)
	})

	// Start systray (blocks until quit)
	systray.Run(onReady, onExit)
}

// onReady is called when systray is ready
func onReady() {
	systray.SetIcon(GetIcon(false))
	systray.SetTooltip("vpnman")

	mStatus = systray.AddMenuItem("VPN Configurations", "")
	mStatus.Disable()

	systray.AddSeparator()

	for i := 0; i < maxSlots; i++ {
		item := systray.AddMenuItemCheckbox("", "", false)
		item.Hide()
		slots = append(slots, item)
		go watchSlot(i, item)
	}

	systray.AddSeparator()

	mRefresh = systray.AddMenuItem("Refresh", "Re-read the VPN listing")

	launchAtLogin := false
	if cfg := prefs.Get(); cfg != nil {
		launchAtLogin = cfg.LaunchAtLogin
	}
	mLogin = systray.AddMenuItemCheckbox("Launch at Login", "", launchAtLogin)
	mOpenLog = systray.AddMenuItem("Open Log", "")

	systray.AddSeparator()

	mQuit = systray.AddMenuItem("Quit", "")

	// Handle fixed menu clicks
	go func() {
		defer logger.Recover("systray-menu-loop")
		for {
			select {
			case <-mRefresh.ClickedCh:
				logger.SafeGo("doRefresh", doRefresh)
			case <-mLogin.ClickedCh:
				logger.SafeGo("toggleLoginItem", toggleLoginItem)
			case <-mOpenLog.ClickedCh:
				logger.SafeGo("openLogFile", openLogFile)
			case <-mQuit.ClickedCh:
				systray.Quit()
				return
			}
		}
	}()

	// Initial listing
	logger.SafeGo("initial-refresh", doRefresh)
}

// onExit is called when systray exits
func onExit() {
	logger.Info("vpnman shutting down")
	logger.Close()
}

// watchSlot forwards clicks on one configuration row.
func watchSlot(idx int, item *systray.MenuItem) {
	defer logger.Recover("watchSlot")
	for range item.ClickedCh {
		go toggleSlot(idx)
	}
}

func toggleSlot(idx int) {
	defer logger.Recover("toggleSlot")

	slotMu.Lock()
	var id string
	if idx < len(shown) {
		id = shown[idx].ID
	}
	slotMu.Unlock()

	if id == "" {
		return
	}

	if err := service.Toggle(id); err != nil {
		ShowAlert("VPN toggle failed", err.Error())
		return
	}

	// Reconcile the optimistic flip with the authoritative listing.
	if err := service.Refresh(); err != nil {
		logger.Warning("post-toggle refresh failed: %v", err)
	}
}

func doRefresh() {
	if err := service.Refresh(); err != nil {
		logger.Error("listing refresh failed: %v", err)
		ShowAlert("VPN listing failed", err.Error())
	}
}

// reconcileLoginPreference clears the persisted launch-at-login flag
// when the agent plist is no longer installed.
func reconcileLoginPreference(prefs *config.Manager, installed bool) {
	cfg := prefs.Get()
	if cfg == nil || !cfg.LaunchAtLogin || installed {
		return
	}
	logger.Warning("launch agent removed externally, clearing launch-at-login preference")
	if err := prefs.SetLaunchAtLogin(false); err != nil {
		logger.Error("failed to persist preference: %v", err)
	}
}

func toggleLoginItem() {
	enable := !mLogin.Checked()

	if err := loginitem.SetEnabled(enable); err != nil {
		logger.Error("failed to update launch agent: %v", err)
		ShowAlert("Launch at Login", err.Error())
		return
	}
	if err := prefs.SetLaunchAtLogin(enable); err != nil {
		logger.Error("failed to persist preference: %v", err)
	}

	if enable {
		mLogin.Check()
	} else {
		mLogin.Uncheck()
	}
}

// updateUI re-renders the menu from a published status snapshot.
func updateUI(status *core.Status) {
	defer logger.Recover("updateUI")

	if status == nil {
		return
	}

	slotMu.Lock()
	shown = status.Configurations
	for i, item := range slots {
		if i >= len(shown) {
			item.Hide()
			continue
		}
		cfg := shown[i]
		title := cfg.Name
		if title == "" {
			title = cfg.ID
		}
		item.SetTitle(title)
		item.SetTooltip(cfg.ServiceType)
		if cfg.Connected {
			item.Check()
		} else {
			item.Uncheck()
		}
		item.Show()
	}
	if len(shown) > len(slots) {
		logger.Warning("showing %d of %d configurations", len(slots), len(shown))
	}
	slotMu.Unlock()

	if len(status.Configurations) == 0 {
		mStatus.SetTitle("No VPN configurations")
	} else {
		mStatus.SetTitle(fmt.Sprintf("VPN Configurations (%d)", len(status.Configurations)))
	}

	// Global indicator: tint the tray icon while anything is connected.
	systray.SetIcon(GetIcon(status.AnyConnected))
	if status.AnyConnected {
		systray.SetTooltip("vpnman — connected")
	} else {
		systray.SetTooltip("vpnman")
	}
}
