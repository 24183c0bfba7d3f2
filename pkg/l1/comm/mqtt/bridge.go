package mqtt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/actuator.go/pkg/l0/platform"
	"github.com/robotalks/actuator.go/pkg/l1"
)

// DefaultReportInterval is the default interval of state reports.
const DefaultReportInterval = time.Second

// DefaultRetryInterval is the default wait between failed initial connects.
const DefaultRetryInterval = 5 * time.Second

// Bridge connects a controller to the broker. It delivers every byte
// published to <type>/<id>/cmd to Handler, keeps a retained
// <type>/<id>/meta while connected and publishes State to
// <type>/<id>/state periodically.
type Bridge struct {
	Queue    *Queue
	Info     l1.ControllerInfo
	Handler  platform.ByteHandler
	State    l1.StateSource
	Interval time.Duration
	// RetryInterval paces connect attempts until the first success.
	// Later disconnects are handled by auto reconnect.
	RetryInterval time.Duration

	metaJSON []byte
}

// NewBridge creates a Bridge.
func NewBridge(brokerURL string, info l1.ControllerInfo) (*Bridge, error) {
	meta, err := json.Marshal(&info.Meta)
	if err != nil {
		return nil, err
	}
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+info.Ref.Topic(l1.TopicMeta), nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID("actuator:" + info.Ref.Name())
	}
	b := &Bridge{
		Queue:         NewQueue(opts, topicPrefix),
		Info:          info,
		Interval:      DefaultReportInterval,
		RetryInterval: DefaultRetryInterval,
		metaJSON:      meta,
	}
	b.Queue.OnConnect = func(*Queue) { b.publishMeta() }
	return b, nil
}

// Name implements Named.
func (b *Bridge) Name() string {
	return "mqtt:" + b.Info.Ref.Name()
}

// Run implements Runnable.
func (b *Bridge) Run(ctx context.Context) error {
	sub := b.Queue.Sub(b.Info.Ref.Topic(l1.TopicCommand), b.handleCommand)
	defer sub.Close()
	if err := b.connect(ctx); err != nil {
		b.Queue.Close()
		return err
	}

	interval := b.Interval
	if interval <= 0 {
		interval = DefaultReportInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			if b.Queue.Client.IsConnected() {
				b.Queue.PubWith(b.Info.Ref.Topic(l1.TopicMeta), nil, 1, true).Wait()
			}
			b.Queue.Close()
			return ctx.Err()
		case <-ticker.C:
			b.publishState()
		}
	}
}

// connect retries until the first connect succeeds, as auto reconnect
// only covers connections lost after that.
func (b *Bridge) connect(ctx context.Context) error {
	retry := b.RetryInterval
	if retry <= 0 {
		retry = DefaultRetryInterval
	}
	for {
		err := waitToken(ctx, b.Queue.Connect())
		if err == nil {
			glog.Infof("%s: connected", b.Name())
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		glog.Warningf("%s: connect error: %v, retry in %v", b.Name(), err, retry)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retry):
		}
	}
}

func (b *Bridge) handleCommand(_ string, payload []byte) {
	h := b.Handler
	if h == nil {
		return
	}
	for _, c := range payload {
		h.HandleByte(c)
	}
}

func (b *Bridge) publishMeta() {
	b.Queue.PubWith(b.Info.Ref.Topic(l1.TopicMeta), b.metaJSON, 1, true)
}

func (b *Bridge) publishState() {
	if b.State == nil || !b.Queue.Client.IsConnected() {
		return
	}
	payload, err := EncodeState(b.State)
	if err != nil {
		glog.Warningf("encode state: %v", err)
		return
	}
	b.Queue.Pub(b.Info.Ref.Topic(l1.TopicState), payload)
}

// StateReport is the payload published to <type>/<id>/state.
type StateReport struct {
	Time  time.Time   `json:"time"`
	State interface{} `json:"state"`
}

// EncodeState encodes a state report.
func EncodeState(src l1.StateSource) ([]byte, error) {
	return json.Marshal(&StateReport{Time: time.Now(), State: src.Snapshot()})
}
