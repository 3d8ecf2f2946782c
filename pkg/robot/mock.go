package robot

import (
	"image/color"
	"sync"
	"time"
)

// Mock implements Robot for testing and dry runs.
// All sensor behavior can be customized via function fields.
type Mock struct {
	// DistanceFunc is called when ReadDistance is invoked.
	// If nil, returns Distance.
	DistanceFunc func(timeout time.Duration, samples int) (float64, error)

	// Distance is the fixed reading used when DistanceFunc is nil.
	Distance float64

	// Err, when set, is returned by every actuator call.
	Err error

	// Tracking
	mu    sync.Mutex
	calls []MockCall
	light color.RGBA
}

// MockCall records a method invocation for verification.
type MockCall struct {
	Method string
	Speeds Speeds
	Color  color.RGBA
	Time   time.Time
}

// Mock method names as recorded in MockCall.Method.
const (
	CallSetMotorSpeeds    = "SetMotorSpeeds"
	CallDisableMotors     = "DisableMotors"
	CallFillUnderlighting = "FillUnderlighting"
	CallReadDistance      = "ReadDistance"
)

// NewMock creates a mock robot that reports distance cm.
func NewMock(distance float64) *Mock {
	return &Mock{Distance: distance}
}

func (m *Mock) record(c MockCall) {
	c.Time = time.Now()
	m.calls = append(m.calls, c)
}

// SetMotorSpeeds records a clamped speed command.
func (m *Mock) SetMotorSpeeds(left, right float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(MockCall{Method: CallSetMotorSpeeds, Speeds: Speeds{Left: left, Right: right}.Clamp()})
	return m.Err
}

// DisableMotors records a disable command.
func (m *Mock) DisableMotors() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(MockCall{Method: CallDisableMotors})
	return m.Err
}

// FillUnderlighting records a light fill.
func (m *Mock) FillUnderlighting(c color.RGBA) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(MockCall{Method: CallFillUnderlighting, Color: c})
	m.light = c
	return m.Err
}

// ReadDistance returns the configured distance.
func (m *Mock) ReadDistance(timeout time.Duration, samples int) (float64, error) {
	m.mu.Lock()
	fn := m.DistanceFunc
	d := m.Distance
	m.record(MockCall{Method: CallReadDistance})
	m.mu.Unlock()

	if fn != nil {
		return fn(timeout, samples)
	}
	return d, nil
}

// Close implements Robot.
func (m *Mock) Close() error {
	return nil
}

// Calls returns a copy of every recorded call.
func (m *Mock) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallsTo returns the recorded calls to one method.
func (m *Mock) CallsTo(method string) []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []MockCall
	for _, c := range m.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Light returns the last underlighting fill.
func (m *Mock) Light() color.RGBA {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.light
}

// Reset clears recorded calls.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
