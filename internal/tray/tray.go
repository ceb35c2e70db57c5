// Package tray provides a system tray menu for hologlobe: the region in view,
// a tracking switch and the subject picker.
package tray

import (
	"sync"

	"github.com/getlantern/systray"

	"github.com/ayusman/hologlobe/internal/config"
)

// Tray represents the system tray application.
type Tray struct {
	subjects  []config.Subject
	onToggle  func(enabled bool)
	onSubject func(id string)
	onQuit    func()
	enabled   bool
	current   string
	region    string
	mu        sync.RWMutex

	// Menu items stored for later updates
	menuToggle   *systray.MenuItem
	menuRegion   *systray.MenuItem
	menuSubjects map[string]*systray.MenuItem
}

// New creates a tray listing subjects with current checked. Tracking starts
// enabled.
func New(subjects []config.Subject, current string) *Tray {
	return &Tray{
		subjects: subjects,
		enabled:  true,
		current:  current,
	}
}

// OnToggle sets the callback function to be called when tracking is toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnSubject sets the callback function to be called when a subject is picked.
func (t *Tray) OnSubject(fn func(id string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSubject = fn
}

// OnQuit sets the callback function to be called when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Quit ends Run from any goroutine.
func Quit() {
	systray.Quit()
}

func (t *Tray) onReady() {
	systray.SetTitle("Hologlobe")
	systray.SetTooltip("Hologlobe hand tracking")

	t.mu.Lock()
	t.menuToggle = systray.AddMenuItem(toggleTitle(t.enabled), "Toggle hand tracking")
	systray.AddSeparator()

	t.menuRegion = systray.AddMenuItem(regionTitle(t.region), "Region facing the viewer")
	t.menuRegion.Disable()
	systray.AddSeparator()

	menuSubject := systray.AddMenuItem("Subject", "Switch the displayed body")
	t.menuSubjects = make(map[string]*systray.MenuItem, len(t.subjects))
	for _, s := range t.subjects {
		item := menuSubject.AddSubMenuItemCheckbox(s.Name, s.ID, s.ID == t.current)
		t.menuSubjects[s.ID] = item
		go t.watchSubject(s.ID, item)
	}
	t.mu.Unlock()
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Hologlobe")

	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

func (t *Tray) watchSubject(id string, item *systray.MenuItem) {
	for range item.ClickedCh {
		t.handleSubject(id)
	}
}

func (t *Tray) onExit() {}

func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled
	if t.menuToggle != nil {
		t.menuToggle.SetTitle(toggleTitle(enabled))
	}
	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

func (t *Tray) handleSubject(id string) {
	t.mu.Lock()
	t.current = id
	for sid, item := range t.menuSubjects {
		if sid == id {
			item.Check()
		} else {
			item.Uncheck()
		}
	}
	callback := t.onSubject
	t.mu.Unlock()

	if callback != nil {
		callback(id)
	}
}

func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetRegion updates the region display in the menu.
func (t *Tray) SetRegion(label string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.region = label
	if t.menuRegion != nil {
		t.menuRegion.SetTitle(regionTitle(label))
	}
}

// Region returns the label last passed to SetRegion.
func (t *Tray) Region() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.region
}

// IsEnabled returns the current enabled state.
func (t *Tray) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}

// Subject returns the id of the checked subject.
func (t *Tray) Subject() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

func toggleTitle(enabled bool) string {
	if enabled {
		return "● Tracking"
	}
	return "○ Paused"
}

func regionTitle(label string) string {
	if label == "" {
		return "Region: none"
	}
	return "Region: " + label
}
