package pcm

import (
	"errors"
	"io"
)

// memFile is an in-memory io.WriteSeeker. The WAV encoder seeks back to
// patch chunk sizes, which bytes.Buffer cannot do.
type memFile struct {
	data []byte
	pos  int64
}

func (m *memFile) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.data)) {
		m.data = append(m.data, make([]byte, end-int64(len(m.data)))...)
	}
	copy(m.data[m.pos:end], p)
	m.pos = end
	return len(p), nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = m.pos + offset
	case io.SeekEnd:
		abs = int64(len(m.data)) + offset
	default:
		return 0, errors.New("pcm: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("pcm: negative position")
	}
	m.pos = abs
	return abs, nil
}
