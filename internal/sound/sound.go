// Package sound synthesises the short effects played on eating and on
// game over as 16-bit little-endian stereo PCM.
package sound

import "math"

const SampleRate = 44100

// Tone is a decaying sine wave
type Tone struct {
	Freq     float64 // Hz
	Duration float64 // seconds
	Volume   float64 // peak amplitude out of 32767
	Decay    float64 // exponential decay rate per second
}

var (
	Eat      = Tone{Freq: 880, Duration: 0.1, Volume: 4000, Decay: 3}
	GameOver = Tone{Freq: 220, Duration: 0.4, Volume: 4000, Decay: 3}
)

// PCM renders the tone at SampleRate
func (t Tone) PCM() []byte {
	n := int(float64(SampleRate) * t.Duration)
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		at := float64(i) / SampleRate
		v := int16(math.Sin(2*math.Pi*t.Freq*at) * t.Volume * math.Exp(-t.Decay*at))
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}
