package stream

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type slowWriter struct {
	bytes.Buffer
}

func (w *slowWriter) Write(p []byte) (int, error) {
	return w.Buffer.Write(p[:1])
}

func TestSender(t *testing.T) {
	var w slowWriter
	s := New(&w)
	require.NoError(t, s.SendCommand(context.Background(), 200, 70, 200))
	require.Equal(t, []byte{200, 70, 200}, w.Bytes())
	require.NoError(t, s.Close())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Equal(t, context.Canceled, s.SendCommand(ctx, 1))
}
