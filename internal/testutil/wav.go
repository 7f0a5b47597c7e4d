package testutil

import (
	"encoding/binary"
	"testing"
)

// RequireWAVHeader fails t unless data starts with the canonical 44-byte
// header of a 16-bit mono PCM file holding dataBytes of samples.
func RequireWAVHeader(t *testing.T, data []byte, sampleRate, dataBytes int) {
	t.Helper()
	if len(data) < 44 {
		t.Fatalf("header truncated: %d bytes", len(data))
	}
	le := binary.LittleEndian
	checks := []struct {
		name      string
		got, want uint32
	}{
		{"riff size", le.Uint32(data[4:8]), uint32(36 + dataBytes)},
		{"fmt size", le.Uint32(data[16:20]), 16},
		{"format", uint32(le.Uint16(data[20:22])), 1},
		{"channels", uint32(le.Uint16(data[22:24])), 1},
		{"sample rate", le.Uint32(data[24:28]), uint32(sampleRate)},
		{"byte rate", le.Uint32(data[28:32]), uint32(2 * sampleRate)},
		{"block align", uint32(le.Uint16(data[32:34])), 2},
		{"bits", uint32(le.Uint16(data[34:36])), 16},
		{"data size", le.Uint32(data[40:44]), uint32(dataBytes)},
	}
	for _, tag := range []struct {
		off  int
		want string
	}{{0, "RIFF"}, {8, "WAVE"}, {12, "fmt "}, {36, "data"}} {
		if got := string(data[tag.off : tag.off+4]); got != tag.want {
			t.Fatalf("offset %d: got %q, want %q", tag.off, got, tag.want)
		}
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Fatalf("%s: got %d, want %d", c.name, c.got, c.want)
		}
	}
}
