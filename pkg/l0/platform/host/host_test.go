package host

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/actuator.go/pkg/l0/platform"
)

type recorder struct {
	bytes []byte
}

func (r *recorder) HandleByte(b byte) {
	r.bytes = append(r.bytes, b)
}

func TestPlatformInitOrder(t *testing.T) {
	p := New(nil)
	require.Equal(t, ErrNotConfigured, p.EnableReceiveInterrupt(&recorder{}))
	require.NoError(t, p.ConfigureOutput())
	require.NoError(t, p.EnableReceiveInterrupt(&recorder{}))
	require.NoError(t, p.EnableGlobalInterrupts())
}

func TestPlatformReadsSource(t *testing.T) {
	rec := &recorder{}
	p := New(bytes.NewReader([]byte{200, 70, 200}))
	require.NoError(t, p.ConfigureOutput())
	require.NoError(t, p.EnableReceiveInterrupt(rec))

	p.HandleByte(1)
	require.Equal(t, uint64(1), p.Dropped())

	require.NoError(t, p.EnableGlobalInterrupts())
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(ctx) }()
	waitReceived(t, p, 3)

	// EOF keeps Run alive until ctx is done.
	select {
	case err := <-errCh:
		t.Fatalf("run stopped at EOF: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	cancel()
	require.Equal(t, context.Canceled, <-errCh)
	require.Equal(t, []byte{200, 70, 200}, rec.bytes)
	require.Equal(t, uint64(3), p.Received())
}

func waitReceived(t *testing.T, p *Platform, n uint64) {
	deadline := time.Now().Add(time.Second)
	for p.Received() < n {
		if time.Now().After(deadline) {
			t.Fatalf("received %d bytes, expect %d", p.Received(), n)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestPlatformRunSourceError(t *testing.T) {
	p := New(errReader{})
	require.Equal(t, io.ErrUnexpectedEOF, p.Run(context.Background()))
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

type blockingReader struct {
	closed chan struct{}
}

func (r *blockingReader) Read([]byte) (int, error) {
	<-r.closed
	return 0, io.ErrClosedPipe
}

func (r *blockingReader) Close() error {
	close(r.closed)
	return nil
}

func TestPlatformRunCancel(t *testing.T) {
	src := &blockingReader{closed: make(chan struct{})}
	p := New(src)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(ctx) }()
	cancel()
	select {
	case err := <-errCh:
		require.Equal(t, context.Canceled, err)
	case <-time.After(time.Second):
		t.Fatal("run not stopped")
	}
}

func TestPlatformBus(t *testing.T) {
	var out []byte
	p := New(nil)
	p.Output = platform.SetBusFunc(func(v byte) { out = append(out, v) })
	p.Delayer = platform.NopDelayer{}
	p.SetBus(7)
	p.Delay(time.Hour)
	p.SetBus(2)
	require.Equal(t, byte(2), p.Bus())
	require.Equal(t, []byte{7, 2}, out)
}
