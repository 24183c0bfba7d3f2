// Package protocol provides the L0 command byte protocol.
package protocol

// Every command is a single byte received over a synchronous serial link
// with no framing and no checksum. The upper bits tag the command and the
// remaining value is the magnitude. The tag thresholds depend on the
// controller profile:
//
//   Motor:  128-255 toggle LED, 64-127 reverse, 0-63 forward
//   Servo:  64-255 X axis, 32-63 Y axis, 0-31 ignored
//
// Producer: L2 operator tooling (or any SPI/UART master)
// Consumer: L0 controller
