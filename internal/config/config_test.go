package config

import "testing"

func TestString(t *testing.T) {
	t.Setenv("TRILOBOT_TEST_STRING", "")
	if got := String("TRILOBOT_TEST_STRING", "fallback"); got != "fallback" {
		t.Errorf("empty env: got %q, want fallback", got)
	}

	t.Setenv("TRILOBOT_TEST_STRING", "set")
	if got := String("TRILOBOT_TEST_STRING", "fallback"); got != "set" {
		t.Errorf("set env: got %q, want set", got)
	}
}

func TestFloat(t *testing.T) {
	t.Setenv("TRILOBOT_TEST_FLOAT", "49.9")
	if got := Float("TRILOBOT_TEST_FLOAT", 50); got != 49.9 {
		t.Errorf("got %v, want 49.9", got)
	}

	t.Setenv("TRILOBOT_TEST_FLOAT", "near")
	if got := Float("TRILOBOT_TEST_FLOAT", 50); got != 50 {
		t.Errorf("malformed: got %v, want default 50", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("TRILOBOT_TEST_BOOL", "true")
	if !Bool("TRILOBOT_TEST_BOOL", false) {
		t.Error("expected true")
	}

	t.Setenv("TRILOBOT_TEST_BOOL", "maybe")
	if Bool("TRILOBOT_TEST_BOOL", false) {
		t.Error("malformed value should fall back to false")
	}
}

func TestDashboardPort(t *testing.T) {
	t.Setenv("TRILOBOT_DASHBOARD_PORT", "")
	if got := DashboardPort(); got != "" {
		t.Errorf("explicitly empty port should disable dashboard, got %q", got)
	}

	t.Setenv("TRILOBOT_DASHBOARD_PORT", "9000")
	if got := DashboardPort(); got != "9000" {
		t.Errorf("got %q, want 9000", got)
	}
}

func TestDashboardURL(t *testing.T) {
	if got := DashboardURL("trilobot.local", "8080"); got != "ws://trilobot.local:8080" {
		t.Errorf("got %q", got)
	}
}
