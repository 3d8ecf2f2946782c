package robot

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// Config holds the Trilobot pin and bus assignments.
type Config struct {
	// Motor driver (DRV8833): one enable line, a P/N pair per motor
	MotorEnablePin string
	LeftMotorP     string
	LeftMotorN     string
	RightMotorP    string
	RightMotorN    string
	PWMFrequency   physic.Frequency

	// HC-SR04 ultrasonic sensor
	TriggerPin string
	EchoPin    string

	// SN3218 underlighting driver
	I2CBus  string // "" picks the first bus
	LEDAddr uint16
}

// DefaultConfig returns the pin map of the Pimoroni Trilobot.
func DefaultConfig() Config {
	return Config{
		MotorEnablePin: "GPIO26",
		LeftMotorP:     "GPIO8",
		LeftMotorN:     "GPIO11",
		RightMotorP:    "GPIO10",
		RightMotorN:    "GPIO9",
		PWMFrequency:   100 * physic.Hertz,

		TriggerPin: "GPIO13",
		EchoPin:    "GPIO25",

		I2CBus:  "",
		LEDAddr: 0x54,
	}
}

// Trilobot drives the real robot through periph.io.
type Trilobot struct {
	config Config

	mu     sync.Mutex // Serializes GPIO and I2C access
	enable gpio.PinIO
	left   motor
	right  motor
	ranger *ultrasonic
	bus    i2c.BusCloser
	leds   *sn3218
}

// Open initializes the host drivers and claims the Trilobot pins.
// Any failure is reported as ErrHardwareUnavailable.
func Open(cfg Config) (*Trilobot, error) {
	if _, err := host.Init(); err != nil {
		return nil, WrapHardware("host", err)
	}

	pins := map[string]gpio.PinIO{}
	for _, name := range []string{
		cfg.MotorEnablePin, cfg.LeftMotorP, cfg.LeftMotorN,
		cfg.RightMotorP, cfg.RightMotorN, cfg.TriggerPin, cfg.EchoPin,
	} {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, WrapHardware("gpio", fmt.Errorf("pin %s not found", name))
		}
		pins[name] = p
	}

	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return nil, WrapHardware("i2c", err)
	}

	t := &Trilobot{
		config: cfg,
		enable: pins[cfg.MotorEnablePin],
		left:   motor{p: pins[cfg.LeftMotorP], n: pins[cfg.LeftMotorN], freq: cfg.PWMFrequency},
		right:  motor{p: pins[cfg.RightMotorP], n: pins[cfg.RightMotorN], freq: cfg.PWMFrequency},
		ranger: &ultrasonic{trig: pins[cfg.TriggerPin], echo: pins[cfg.EchoPin]},
		bus:    bus,
		leds:   &sn3218{dev: &i2c.Dev{Bus: bus, Addr: cfg.LEDAddr}},
	}

	if err := t.ranger.init(); err != nil {
		bus.Close()
		return nil, WrapHardware("ultrasonic", err)
	}
	if err := t.leds.init(); err != nil {
		bus.Close()
		return nil, WrapHardware("underlighting", err)
	}
	if err := t.DisableMotors(); err != nil {
		bus.Close()
		return nil, err
	}

	return t, nil
}

// SetMotorSpeeds enables the driver and sets both wheel speeds.
func (t *Trilobot) SetMotorSpeeds(left, right float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Speeds{Left: left, Right: right}.Clamp()
	if err := t.enable.Out(gpio.High); err != nil {
		return WrapHardware("motors", err)
	}
	if err := t.left.set(s.Left); err != nil {
		return WrapHardware("left motor", err)
	}
	if err := t.right.set(s.Right); err != nil {
		return WrapHardware("right motor", err)
	}
	return nil
}

// DisableMotors zeroes both wheels and drops the driver enable line.
func (t *Trilobot) DisableMotors() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.left.set(0); err != nil {
		return WrapHardware("left motor", err)
	}
	if err := t.right.set(0); err != nil {
		return WrapHardware("right motor", err)
	}
	if err := t.enable.Out(gpio.Low); err != nil {
		return WrapHardware("motors", err)
	}
	return nil
}

// FillUnderlighting sets all six underlights to c.
func (t *Trilobot) FillUnderlighting(c color.RGBA) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return WrapHardware("underlighting", t.leds.fill(c))
}

// ReadDistance pings the ultrasonic sensor.
func (t *Trilobot) ReadDistance(timeout time.Duration, samples int) (float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ranger.read(timeout, samples)
}

// Close stops the motors, turns the lights off and releases the I2C bus.
func (t *Trilobot) Close() error {
	errMotors := t.DisableMotors()
	errLights := t.FillUnderlighting(color.RGBA{})

	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.bus.Close(); err != nil {
		return WrapHardware("i2c", err)
	}
	if errMotors != nil {
		return errMotors
	}
	return errLights
}

// motor is one DRV8833 H-bridge channel.
type motor struct {
	p, n gpio.PinIO
	freq physic.Frequency
}

// set drives the P side for forward and the N side for reverse.
func (m motor) set(speed float64) error {
	switch {
	case speed > 0:
		if err := m.n.Out(gpio.Low); err != nil {
			return err
		}
		return m.p.PWM(duty(speed), m.freq)
	case speed < 0:
		if err := m.p.Out(gpio.Low); err != nil {
			return err
		}
		return m.n.PWM(duty(-speed), m.freq)
	default:
		if err := m.p.Out(gpio.Low); err != nil {
			return err
		}
		return m.n.Out(gpio.Low)
	}
}

func duty(speed float64) gpio.Duty {
	return gpio.Duty(float64(gpio.DutyMax) * clamp(speed, 0, 1))
}
