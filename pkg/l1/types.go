package l1

import "context"

// ControllerRef is a reference to an actuator controller.
type ControllerRef struct {
	// Type is controller type, usually the profile.
	Type string `json:"type"`
	// ID is unique ID of the device.
	ID string `json:"id"`
}

// Name retrieves the name from ref.
func (r ControllerRef) Name() string {
	return r.Type + "/" + r.ID
}

// IsValid indicates ControllerRef is valid.
func (r ControllerRef) IsValid() bool {
	return r.Type != "" && r.ID != ""
}

// Topic returns the topic of the controller with suffix.
func (r ControllerRef) Topic(suffix string) string {
	return r.Name() + "/" + suffix
}

// Topic suffixes.
const (
	TopicCommand = "cmd"
	TopicState   = "state"
	TopicMeta    = "meta"
)

// ControllerMeta provides metadata for a controller.
type ControllerMeta struct {
	Description string            `json:"description,omitempty"`
	Profile     string            `json:"profile,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// ControllerInfo provides information of a controller.
type ControllerInfo struct {
	Ref  ControllerRef  `json:"ref"`
	Meta ControllerMeta `json:"meta"`
}

// CommandSender delivers raw command bytes to a controller.
type CommandSender interface {
	SendCommand(ctx context.Context, cmds ...byte) error
}

// StateSource provides a snapshot of the controller state.
type StateSource interface {
	Snapshot() interface{}
}
