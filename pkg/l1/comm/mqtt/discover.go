package mqtt

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	"github.com/robotalks/actuator.go/pkg/l1"
)

// DefaultDiscoverTimeout defines the default timeout value of discovery.
const DefaultDiscoverTimeout = 500 * time.Millisecond

// Discover collects the retained meta of registered controllers.
func Discover(ctx context.Context, brokerURL string, timeout time.Duration) ([]l1.ControllerInfo, error) {
	q, err := NewQueueFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	infoCh := make(chan l1.ControllerInfo, 16)
	q.Sub("+/+/"+l1.TopicMeta, func(topic string, payload []byte) {
		info, ok := ParseMeta(topic, payload)
		if !ok {
			return
		}
		select {
		case infoCh <- info:
		case <-time.After(time.Second):
		}
	})
	defer q.Close()
	if err := waitToken(ctx, q.Connect()); err != nil {
		return nil, err
	}

	if timeout <= 0 {
		timeout = DefaultDiscoverTimeout
	}
	deadline := time.After(timeout)
	var res []l1.ControllerInfo
	for {
		select {
		case info := <-infoCh:
			res = append(res, info)
		case <-deadline:
			return res, nil
		case <-ctx.Done():
			return res, ctx.Err()
		}
	}
}

// ParseMeta parses a retained meta message. Empty payloads are cleared
// registrations and are rejected.
func ParseMeta(topic string, payload []byte) (info l1.ControllerInfo, ok bool) {
	items := strings.Split(topic, "/")
	if len(items) != 3 || items[2] != l1.TopicMeta || len(payload) == 0 {
		return
	}
	info.Ref = l1.ControllerRef{Type: items[0], ID: items[1]}
	if err := json.Unmarshal(payload, &info.Meta); err != nil {
		glog.Warningf("%s: bad meta: %v", topic, err)
		return info, false
	}
	return info, true
}

func waitToken(ctx context.Context, token paho.Token) error {
	done := make(chan struct{})
	go func() {
		token.Wait()
		close(done)
	}()
	select {
	case <-done:
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}
