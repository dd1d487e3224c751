package sound

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(buf []byte, i, ch int) int16 {
	return int16(binary.LittleEndian.Uint16(buf[i*4+ch*2:]))
}

func TestPCMLength(t *testing.T) {
	buf := Eat.PCM()
	assert.Len(t, buf, int(SampleRate*0.1)*4)
}

func TestPCMChannelsMatch(t *testing.T) {
	buf := GameOver.PCM()
	for i := 0; i < len(buf)/4; i += 97 {
		require.Equal(t, sample(buf, i, 0), sample(buf, i, 1))
	}
}

func TestPCMStaysUnderVolume(t *testing.T) {
	buf := Eat.PCM()
	for i := 0; i < len(buf)/4; i++ {
		require.LessOrEqual(t, math.Abs(float64(sample(buf, i, 0))), Eat.Volume)
	}
	assert.Zero(t, sample(buf, 0, 0))
}

func TestPCMEmptyForZeroDuration(t *testing.T) {
	assert.Nil(t, Tone{Freq: 440}.PCM())
}
