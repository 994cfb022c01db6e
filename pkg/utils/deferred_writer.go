// Package utils holds small io helpers.
package utils

import (
	"bytes"
	"io"
	"sync"
)

// DeferredWriter holds writes in memory until Flush. The console logger
// writes through one while interactive prompts own the terminal.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write implements io.Writer.
func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Len returns the number of buffered bytes.
func (d *DeferredWriter) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Len()
}

// Flush copies the buffered bytes to w and empties the buffer.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.buf.Len() == 0 {
		return nil
	}
	_, err := d.buf.WriteTo(w)
	return err
}
