package tray

import (
	"testing"

	"github.com/ayusman/hologlobe/internal/config"
)

func testSubjects() []config.Subject {
	return []config.Subject{
		{ID: "earth", Name: "Earth", Regions: true},
		{ID: "mars", Name: "Mars"},
	}
}

func TestTray_Toggle(t *testing.T) {
	tr := New(testSubjects(), "earth")
	if !tr.IsEnabled() {
		t.Fatal("tray should start enabled")
	}

	var got []bool
	tr.OnToggle(func(enabled bool) { got = append(got, enabled) })

	tr.handleToggle()
	tr.handleToggle()

	if len(got) != 2 || got[0] != false || got[1] != true {
		t.Errorf("toggle callbacks = %v, want [false true]", got)
	}
	if !tr.IsEnabled() {
		t.Error("IsEnabled() = false after two toggles")
	}
}

func TestTray_Subject(t *testing.T) {
	tr := New(testSubjects(), "earth")

	var picked string
	tr.OnSubject(func(id string) { picked = id })
	tr.handleSubject("mars")

	if picked != "mars" {
		t.Errorf("callback got %q, want mars", picked)
	}
	if tr.Subject() != "mars" {
		t.Errorf("Subject() = %q, want mars", tr.Subject())
	}
}

func TestTray_Region(t *testing.T) {
	tr := New(testSubjects(), "earth")
	tr.SetRegion("Asia")

	if tr.Region() != "Asia" {
		t.Errorf("Region() = %q, want Asia", tr.Region())
	}
	if got := regionTitle(""); got != "Region: none" {
		t.Errorf("regionTitle(\"\") = %q", got)
	}
	if got := regionTitle("Pacific Ocean"); got != "Region: Pacific Ocean" {
		t.Errorf("regionTitle() = %q", got)
	}
}
