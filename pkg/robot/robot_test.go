package robot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"testing"
	"time"
)

const floatTolerance = 1e-9

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestSpeeds_Clamp(t *testing.T) {
	tests := []struct {
		name string
		in   Speeds
		want Speeds
	}{
		{"within range", Speeds{0.5, -0.5}, Speeds{0.5, -0.5}},
		{"too fast forward", Speeds{1.7, 0.2}, Speeds{1, 0.2}},
		{"too fast reverse", Speeds{-3, -1.01}, Speeds{-1, -1}},
		{"zero", Speeds{}, Speeds{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Clamp()
			if !floatEquals(got.Left, tc.want.Left) || !floatEquals(got.Right, tc.want.Right) {
				t.Errorf("Clamp: got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSpeeds_IsZero(t *testing.T) {
	if !Halt.IsZero() {
		t.Error("Halt should be zero")
	}
	if Forward.IsZero() || TurnRight.IsZero() {
		t.Error("Forward and TurnRight should not be zero")
	}
}

func TestHardwareError_IsUnavailable(t *testing.T) {
	err := WrapHardware("camera", errors.New("device busy"))

	if !errors.Is(err, ErrHardwareUnavailable) {
		t.Error("HardwareError should match ErrHardwareUnavailable")
	}

	wrapped := fmt.Errorf("capture: %w", err)
	if !errors.Is(wrapped, ErrHardwareUnavailable) {
		t.Error("wrapped HardwareError should still match")
	}

	var hw *HardwareError
	if !errors.As(wrapped, &hw) || hw.Device != "camera" {
		t.Errorf("errors.As: got %+v", hw)
	}

	if WrapHardware("camera", nil) != nil {
		t.Error("WrapHardware(nil) should be nil")
	}
}

func TestMock_RecordsCalls(t *testing.T) {
	m := NewMock(42)

	m.SetMotorSpeeds(2, -0.5)
	m.DisableMotors()
	m.FillUnderlighting(color.RGBA{R: 255, A: 255})

	calls := m.Calls()
	if len(calls) != 3 {
		t.Fatalf("got %d calls, want 3", len(calls))
	}
	if calls[0].Method != CallSetMotorSpeeds || calls[0].Speeds != (Speeds{1, -0.5}) {
		t.Errorf("first call: got %+v", calls[0])
	}
	if calls[1].Method != CallDisableMotors {
		t.Errorf("second call: got %s", calls[1].Method)
	}
	if m.Light().R != 255 {
		t.Errorf("Light: got %+v", m.Light())
	}
	if n := len(m.CallsTo(CallDisableMotors)); n != 1 {
		t.Errorf("CallsTo(DisableMotors): got %d, want 1", n)
	}

	m.Reset()
	if len(m.Calls()) != 0 {
		t.Error("Reset should clear calls")
	}
}

func TestMock_ReadDistance(t *testing.T) {
	m := NewMock(30)
	d, err := m.ReadDistance(25*time.Millisecond, 3)
	if err != nil || d != 30 {
		t.Errorf("fixed distance: got %v, %v", d, err)
	}

	m.DistanceFunc = func(time.Duration, int) (float64, error) {
		return 0, ErrNoEcho
	}
	if _, err := m.ReadDistance(25*time.Millisecond, 3); !errors.Is(err, ErrNoEcho) {
		t.Errorf("DistanceFunc: got %v, want ErrNoEcho", err)
	}
}

func TestMock_Err(t *testing.T) {
	m := NewMock(0)
	m.Err = WrapHardware("motors", errors.New("driver fault"))

	if err := m.SetMotorSpeeds(1, 1); !errors.Is(err, ErrHardwareUnavailable) {
		t.Errorf("got %v, want ErrHardwareUnavailable", err)
	}
}

func TestPulseToCM(t *testing.T) {
	// 1ms round trip is 17.15cm one way
	if got := pulseToCM(time.Millisecond); !floatEquals(got, 17.15) {
		t.Errorf("pulseToCM(1ms) = %v, want 17.15", got)
	}
}

func TestFillChannels(t *testing.T) {
	ch := fillChannels(color.RGBA{R: 1, G: 2, B: 3})
	for i := 0; i < underlightCount; i++ {
		if ch[i*3] != 1 || ch[i*3+1] != 2 || ch[i*3+2] != 3 {
			t.Errorf("light %d: got %v", i, ch[i*3:i*3+3])
		}
	}
}

func TestDuty(t *testing.T) {
	if duty(1) == 0 || duty(0) != 0 {
		t.Error("duty should scale speed to the PWM range")
	}
	if duty(2) != duty(1) {
		t.Error("duty should saturate above full speed")
	}
}
