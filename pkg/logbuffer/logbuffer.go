// Package logbuffer retains the most recent lines of daemon log output. The
// agent streams `container system logs --follow` into a Buffer and serves the
// retained tail over its API.
package logbuffer

import (
	"io"
	"strings"
	"sync"
)

// Buffer is a bounded, line-oriented ring. Writes beyond the capacity evict
// the oldest lines. Reads are non-destructive: the tail stays available for
// the next caller. Safe for concurrent use.
type Buffer struct {
	mu      sync.Mutex
	lines   []string
	start   int
	count   int
	partial strings.Builder
}

// New creates a buffer retaining at most maxLines complete lines.
func New(maxLines int) *Buffer {
	if maxLines <= 0 {
		maxLines = 1
	}
	return &Buffer{lines: make([]string, maxLines)}
}

// Write implements io.Writer over a byte stream. Bytes after the last newline
// are held back until the line completes.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, c := range p {
		if c == '\n' {
			b.push(b.partial.String())
			b.partial.Reset()
			continue
		}
		b.partial.WriteByte(c)
	}
	return len(p), nil
}

func (b *Buffer) push(line string) {
	if b.count < len(b.lines) {
		b.lines[(b.start+b.count)%len(b.lines)] = line
		b.count++
		return
	}
	b.lines[b.start] = line
	b.start = (b.start + 1) % len(b.lines)
}

// Lines returns a copy of the retained tail, oldest first.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, b.count)
	for i := 0; i < b.count; i++ {
		out[i] = b.lines[(b.start+i)%len(b.lines)]
	}
	return out
}

// WriteTo writes the retained tail to w, one line per row, oldest first.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, line := range b.Lines() {
		n, err := io.WriteString(w, line+"\n")
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
