package state

// Point is a single captured sample, in sheet-local coordinates.
type Point struct {
	X         float64
	Y         float64
	Force     float64
	Timestamp int64 // milliseconds
}

// Stroke is one contact-down to contact-up gesture.
type Stroke struct {
	ID     string
	Points []Point
	Sealed bool
}

// Len returns the number of points in the stroke.
func (s Stroke) Len() int {
	return len(s.Points)
}

// Last returns the final point of the stroke.
func (s Stroke) Last() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// TouchType is the input-type tag reported for a contact.
type TouchType string

const (
	TouchStylus TouchType = "stylus"
	TouchDirect TouchType = "direct"
	TouchMouse  TouchType = "mouse"
)

// Contact is a single point of physical input in screen coordinates.
type Contact struct {
	ClientX float64
	ClientY float64
	Force   float64
	Type    TouchType
}

// Phase identifies which contact notification an event carries.
type Phase int

const (
	PhaseStart Phase = iota + 1
	PhaseMove
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	}
	return "unknown"
}

// ContactEvent is one start, move or end notification with every
// contact currently touching the surface.
type ContactEvent struct {
	Phase    Phase
	Contacts []Contact
}
