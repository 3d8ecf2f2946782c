// Package config provides environment helpers for the trilobot commands.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults used when neither a flag nor the environment sets a value.
const (
	DefaultLogLevel      = "info"
	DefaultCameraDevice  = "0"
	DefaultDashboardPort = "8080"
)

// LogLevel returns the log level from TRILOBOT_LOG_LEVEL or the default.
func LogLevel() string {
	return String("TRILOBOT_LOG_LEVEL", DefaultLogLevel)
}

// CameraDevice returns the camera device from TRILOBOT_CAMERA.
// A device index ("0") or a V4L2 path ("/dev/video0") are both accepted.
func CameraDevice() string {
	return String("TRILOBOT_CAMERA", DefaultCameraDevice)
}

// DashboardPort returns the dashboard port from TRILOBOT_DASHBOARD_PORT.
// An empty value disables the dashboard.
func DashboardPort() string {
	if port, ok := os.LookupEnv("TRILOBOT_DASHBOARD_PORT"); ok {
		return port
	}
	return DefaultDashboardPort
}

// DashboardURL returns the websocket base URL for a dashboard host.
func DashboardURL(host, port string) string {
	return fmt.Sprintf("ws://%s:%s", host, port)
}

// String returns the value of key, or def when it is unset or empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Float returns key parsed as a float64, or def when unset or malformed.
func Float(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s=%q: %v\n", key, v, err)
		return def
	}
	return f
}

// Bool returns key parsed as a bool, or def when unset or malformed.
func Bool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s=%q: %v\n", key, v, err)
		return def
	}
	return b
}
