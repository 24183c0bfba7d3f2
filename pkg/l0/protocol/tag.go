package protocol

// Tag is the semantic category of a command byte.
type Tag int

// Tags
const (
	TagIgnored Tag = iota
	TagLEDToggle
	TagReverse
	TagForward
	TagXAxis
	TagYAxis
)

// Tag bases. The magnitude of a command byte is the byte minus its base.
const (
	LEDToggleBase = 128
	ReverseBase   = 64
	ForwardBase   = 32
	XAxisBase     = 64
	YAxisBase     = 32
)

// MaxMagnitude is the largest meaningful magnitude. Larger values are
// still accepted by the decoders.
const MaxMagnitude = 10

var tagNames = map[Tag]string{
	TagIgnored:   "ignored",
	TagLEDToggle: "led",
	TagReverse:   "reverse",
	TagForward:   "forward",
	TagXAxis:     "x",
	TagYAxis:     "y",
}

// String implements fmt.Stringer.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "unknown"
}

// Base returns the value subtracted from a command byte to get magnitude.
func (t Tag) Base() int {
	switch t {
	case TagLEDToggle:
		return LEDToggleBase
	case TagReverse:
		return ReverseBase
	case TagForward:
		return ForwardBase
	case TagXAxis:
		return XAxisBase
	case TagYAxis:
		return YAxisBase
	}
	return 0
}

// MotorTag classifies a command byte for the motor profile.
func MotorTag(b byte) Tag {
	switch {
	case b >= LEDToggleBase:
		return TagLEDToggle
	case b >= ReverseBase:
		return TagReverse
	default:
		return TagForward
	}
}

// ServoTag classifies a command byte for the servo profile.
func ServoTag(b byte) Tag {
	switch {
	case b >= XAxisBase:
		return TagXAxis
	case b >= YAxisBase:
		return TagYAxis
	default:
		return TagIgnored
	}
}

// Magnitude strips the tag from a command byte.
// Forward commands always subtract ForwardBase, so bytes below 32 yield a
// negative magnitude.
func Magnitude(tag Tag, b byte) int {
	if tag == TagIgnored {
		return 0
	}
	return int(b) - tag.Base()
}
