package graphics

// EventKind classifies a drained input event. The loop only distinguishes
// quit requests from everything else.
type EventKind int

const (
	EventOther EventKind = iota
	EventQuit
)

// Event is one input event pulled off the platform queue. Timestamp is the
// platform's millisecond stamp for the event.
type Event struct {
	Kind      EventKind
	Timestamp uint32
}
