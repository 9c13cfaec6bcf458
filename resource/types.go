package resource

// Handle is an opaque reference to a storage slot in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Event types for storage lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Event represents a storage lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	Kind   uint32
	Type   EventType
}

// Observer receives notifications about storage lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// Stats counts slot allocations and deallocations over a backend's lifetime.
type Stats struct {
	Allocs uint64
	Frees  uint64
}

// Live returns the number of slots allocated and not yet freed.
func (s Stats) Live() uint64 {
	return s.Allocs - s.Frees
}

// Dropper is optionally implemented by stored values that need cleanup.
type Dropper interface {
	Drop()
}
