// Package stream sends commands over a byte stream such as a serial port.
package stream

import (
	"context"
	"io"
	"sync"
)

// Sender implements l1.CommandSender over an io.Writer.
// Commands are raw bytes, no framing.
type Sender struct {
	io.Writer

	lock sync.Mutex
}

// New creates a Sender.
func New(w io.Writer) *Sender {
	return &Sender{Writer: w}
}

// SendCommand implements l1.CommandSender.
func (s *Sender) SendCommand(ctx context.Context, cmds ...byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	for len(cmds) > 0 {
		n, err := s.Write(cmds)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		cmds = cmds[n:]
	}
	return nil
}

// Close closes the writer if it's an io.Closer.
func (s *Sender) Close() error {
	if closer, ok := s.Writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
