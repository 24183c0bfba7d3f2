// Package actuator implements the L0 actuator controller: a command
// decoder running in the receive-interrupt context and a pulse generator
// running forever on the main context, sharing a small set of scalar
// fields.
package actuator

// The decoder is the only writer of the control state and the generator
// is the only reader that drives outputs. Each logical quantity is its
// own atomic field and each generator phase loads one field per quantity
// when the phase starts, so a command arriving mid-phase takes effect at
// the next phase boundary. No lock is shared between the two contexts.
