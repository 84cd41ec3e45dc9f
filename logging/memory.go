package logging

import (
	"io"
	"sync"
)

// LogsExporter dumps buffered log lines to a writer, newest first when
// the bool argument is true
type LogsExporter interface {
	Export(io.Writer, bool) error
}

// memoryLogs is a fixed-size ring buffer of log lines, used as a zap
// sink so that recent logs can be served over the REST interface
type memoryLogs struct {
	mu    sync.Mutex
	lines [][]byte
	next  int
	total int
}

func newMemoryLogs(size int) *memoryLogs {
	return &memoryLogs{
		lines: make([][]byte, size),
	}
}

func (m *memoryLogs) Write(p []byte) (int, error) {
	l := make([]byte, len(p))
	copy(l, p)
	m.mu.Lock()
	m.lines[m.next] = l
	m.next = (m.next + 1) % len(m.lines)
	m.total++
	m.mu.Unlock()
	return len(p), nil
}

func (m *memoryLogs) Sync() error {
	return nil
}

func (m *memoryLogs) Close() error {
	return nil
}

func (m *memoryLogs) Export(w io.Writer, revert bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := m.total
	if count > len(m.lines) {
		count = len(m.lines)
	}
	first := (m.next - count + len(m.lines)) % len(m.lines)
	for i := 0; i < count; i++ {
		var line []byte
		if revert {
			line = m.lines[(m.next-1-i+len(m.lines))%len(m.lines)]
		} else {
			line = m.lines[(first+i)%len(m.lines)]
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
