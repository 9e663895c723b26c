package passindex

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

// ResolveGrid resolves rec with the grid-cell defaults.
func ResolveGrid(rec Recording) (*Config, error) {
	return Resolve(rec, GridOptions())
}

// ResolvePlace resolves rec with the place-cell defaults.
func ResolvePlace(rec Recording) (*Config, error) {
	return Resolve(rec, PlaceOptions())
}

// LFPFromBuffer extracts one channel of an interleaved acquisition buffer as
// an LFP series. Sample i is stamped t0 + i/SampleRate.
func LFPFromBuffer(buf *audio.FloatBuffer, channel int, t0 float64) (ts, sig []float64, err error) {
	if buf == nil {
		return nil, nil, fmt.Errorf("%w: LFP buffer is nil", ErrInvalidArgument)
	}
	channels, rate, err := checkFormat(buf.Format, channel)
	if err != nil {
		return nil, nil, err
	}

	frames := len(buf.Data) / channels
	ts = make([]float64, frames)
	sig = make([]float64, frames)
	for i := range frames {
		ts[i] = t0 + float64(i)/rate
		sig[i] = buf.Data[i*channels+channel]
	}
	return ts, sig, nil
}

// LFPFromIntBuffer is LFPFromBuffer for integer samples. When the buffer
// records its source bit depth, samples are scaled to [-1, 1); otherwise
// they are returned in raw converter units.
func LFPFromIntBuffer(buf *audio.IntBuffer, channel int, t0 float64) (ts, sig []float64, err error) {
	if buf == nil {
		return nil, nil, fmt.Errorf("%w: LFP buffer is nil", ErrInvalidArgument)
	}
	channels, rate, err := checkFormat(buf.Format, channel)
	if err != nil {
		return nil, nil, err
	}

	scale := 1.0
	if buf.SourceBitDepth > 1 {
		scale = 1 / math.Exp2(float64(buf.SourceBitDepth-1))
	}

	frames := len(buf.Data) / channels
	ts = make([]float64, frames)
	sig = make([]float64, frames)
	for i := range frames {
		ts[i] = t0 + float64(i)/rate
		sig[i] = float64(buf.Data[i*channels+channel]) * scale
	}
	return ts, sig, nil
}

func checkFormat(f *audio.Format, channel int) (channels int, rate float64, err error) {
	if f == nil {
		return 0, 0, fmt.Errorf("%w: LFP buffer has no format", ErrInvalidArgument)
	}
	if f.NumChannels < 1 || f.SampleRate <= 0 {
		return 0, 0, fmt.Errorf("%w: LFP buffer format %d channels at %d Hz",
			ErrInvalidArgument, f.NumChannels, f.SampleRate)
	}
	if channel < 0 || channel >= f.NumChannels {
		return 0, 0, fmt.Errorf("%w: channel %d out of range [0, %d)", ErrInvalidArgument, channel, f.NumChannels)
	}
	return f.NumChannels, float64(f.SampleRate), nil
}
