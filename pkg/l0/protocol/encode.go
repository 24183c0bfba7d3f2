package protocol

import (
	"errors"
	"fmt"
)

// ErrMagnitudeOutOfRange indicates the magnitude can't be encoded.
var ErrMagnitudeOutOfRange = errors.New("magnitude out of range")

// MagnitudeError carries the rejected magnitude.
type MagnitudeError struct {
	Tag       Tag
	Magnitude int
}

// Error implements error.
func (e *MagnitudeError) Error() string {
	return fmt.Sprintf("%s: magnitude %d not in [0, %d]", e.Tag, e.Magnitude, MaxMagnitude)
}

// Unwrap returns ErrMagnitudeOutOfRange.
func (e *MagnitudeError) Unwrap() error {
	return ErrMagnitudeOutOfRange
}

// Encode builds a command byte from tag and magnitude.
// Only the sending side validates; the L0 decoders accept any byte.
func Encode(tag Tag, magnitude int) (byte, error) {
	if tag == TagLEDToggle {
		return LEDToggleBase, nil
	}
	if tag == TagIgnored || tag.Base() == 0 {
		return 0, fmt.Errorf("tag %s can't be encoded", tag)
	}
	if magnitude < 0 || magnitude > MaxMagnitude {
		return 0, &MagnitudeError{Tag: tag, Magnitude: magnitude}
	}
	return byte(tag.Base() + magnitude), nil
}

// EncodeLEDToggle returns the LED toggle command.
func EncodeLEDToggle() byte {
	return LEDToggleBase
}

// EncodeReverse encodes a reverse command.
func EncodeReverse(magnitude int) (byte, error) {
	return Encode(TagReverse, magnitude)
}

// EncodeForward encodes a forward command.
func EncodeForward(magnitude int) (byte, error) {
	return Encode(TagForward, magnitude)
}

// EncodeXAxis encodes an X axis command.
func EncodeXAxis(magnitude int) (byte, error) {
	return Encode(TagXAxis, magnitude)
}

// EncodeYAxis encodes a Y axis command.
func EncodeYAxis(magnitude int) (byte, error) {
	return Encode(TagYAxis, magnitude)
}
