package pcm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// HeaderSize is the length of the canonical RIFF/WAVE header.
	HeaderSize = 44
	// BitDepth is the sample width written.
	BitDepth = 16

	wavFormatPCM = 1
)

var (
	// ErrWrite wraps failures producing WAV output.
	ErrWrite = errors.New("pcm: write failed")
	// ErrRead wraps failures decoding WAV input.
	ErrRead = errors.New("pcm: read failed")
)

// Encode normalizes samples and writes a mono 16-bit WAV stream to w.
func Encode(w io.WriteSeeker, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %d", ErrWrite, sampleRate)
	}

	enc := wav.NewEncoder(w, sampleRate, BitDepth, 1, wavFormatPCM)
	buf := &audio.IntBuffer{
		Data:           Quantize(samples),
		Format:         &audio.Format{SampleRate: sampleRate, NumChannels: 1},
		SourceBitDepth: BitDepth,
	}
	// Write even when empty so the data chunk header is always present.
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// EncodeBytes returns the WAV encoding of samples.
func EncodeBytes(samples []float64, sampleRate int) ([]byte, error) {
	var f memFile
	if err := Encode(&f, samples, sampleRate); err != nil {
		return nil, err
	}
	return f.data, nil
}

// WriteFile encodes samples to path. The file is written next to path under
// a temporary name and renamed into place, so path is either fully written
// or left untouched.
func WriteFile(path string, samples []float64, sampleRate int) (err error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, samples, sampleRate); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Clip is decoded WAV content.
type Clip struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Samples    []int
}

// Duration returns the clip length in seconds.
func (c Clip) Duration() float64 {
	if c.SampleRate == 0 || c.Channels == 0 {
		return 0
	}
	return float64(len(c.Samples)/c.Channels) / float64(c.SampleRate)
}

// Peak returns the largest absolute sample value.
func (c Clip) Peak() int {
	peak := 0
	for _, v := range c.Samples {
		if v < 0 {
			v = -v
		}
		peak = max(peak, v)
	}
	return peak
}

// Decode reads a PCM WAV stream.
func Decode(r io.ReadSeeker) (Clip, error) {
	dec := wav.NewDecoder(r)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return Clip{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	// IsValidFile would reject a valid file with an empty data chunk.
	if dec.NumChans < 1 || dec.BitDepth < 8 {
		return Clip{}, fmt.Errorf("%w: not a valid wav stream", ErrRead)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Clip{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Clip{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Samples:    buf.Data,
	}, nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return Clip{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()
	return Decode(f)
}
