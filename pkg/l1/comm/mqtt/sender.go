package mqtt

import (
	"context"
	"fmt"

	"github.com/robotalks/actuator.go/pkg/l1"
)

// Sender implements l1.CommandSender by publishing to <type>/<id>/cmd.
type Sender struct {
	Queue *Queue
	Ref   l1.ControllerRef
}

// Dial connects to the broker and creates a Sender.
func Dial(ctx context.Context, brokerURL string, ref l1.ControllerRef) (*Sender, error) {
	if !ref.IsValid() {
		return nil, fmt.Errorf("controller type and id must be specified")
	}
	q, err := NewQueueFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	if err := waitToken(ctx, q.Connect()); err != nil {
		return nil, err
	}
	return &Sender{Queue: q, Ref: ref}, nil
}

// SendCommand implements l1.CommandSender.
// All bytes go in one message and are decoded in order.
func (s *Sender) SendCommand(ctx context.Context, cmds ...byte) error {
	if len(cmds) == 0 {
		return nil
	}
	return waitToken(ctx, s.Queue.PubWith(s.Ref.Topic(l1.TopicCommand), cmds, 1, false))
}

// Close implements io.Closer.
func (s *Sender) Close() error {
	return s.Queue.Close()
}
