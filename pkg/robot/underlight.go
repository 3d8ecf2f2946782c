package robot

import (
	"image/color"

	"periph.io/x/conn/v3/i2c"
)

// SN3218 registers
const (
	sn3218Shutdown  = 0x00
	sn3218PWM       = 0x01 // 18 consecutive channel registers
	sn3218LEDCtrl   = 0x13 // 3 registers, 6 enable bits each
	sn3218Update    = 0x16
	sn3218Reset     = 0x17
	sn3218Channels  = 18
	underlightCount = 6
)

// sn3218 is the 18-channel LED driver behind the six RGB underlights.
type sn3218 struct {
	dev *i2c.Dev
}

func (s *sn3218) init() error {
	steps := [][]byte{
		{sn3218Reset, 0xFF},
		{sn3218Shutdown, 0x01},
		{sn3218LEDCtrl, 0x3F, 0x3F, 0x3F},
	}
	for _, w := range steps {
		if err := s.dev.Tx(w, nil); err != nil {
			return err
		}
	}
	return nil
}

// fill writes the same RGB triple to every underlight and latches it.
func (s *sn3218) fill(c color.RGBA) error {
	return s.write(fillChannels(c))
}

func (s *sn3218) write(channels [sn3218Channels]byte) error {
	buf := make([]byte, 0, sn3218Channels+1)
	buf = append(buf, sn3218PWM)
	buf = append(buf, channels[:]...)
	if err := s.dev.Tx(buf, nil); err != nil {
		return err
	}
	return s.dev.Tx([]byte{sn3218Update, 0xFF}, nil)
}

// fillChannels lays out c as R,G,B for each of the six lights.
func fillChannels(c color.RGBA) [sn3218Channels]byte {
	var ch [sn3218Channels]byte
	for i := 0; i < underlightCount; i++ {
		ch[i*3] = c.R
		ch[i*3+1] = c.G
		ch[i*3+2] = c.B
	}
	return ch
}
