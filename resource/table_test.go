package resource

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnResourceEvent(e Event) {
	o.events = append(o.events, e)
}

func TestTable_Basic(t *testing.T) {
	table := NewTable()

	// Insert
	h, err := table.Insert(1, "test")
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	// GetKind with correct kind
	val, ok := table.GetKind(h, 1)
	if !ok {
		t.Fatal("GetKind with correct kind failed")
	}
	if val != "test" {
		t.Fatalf("Expected 'test', got %v", val)
	}

	// GetKind with wrong kind
	if _, ok = table.GetKind(h, 2); ok {
		t.Fatal("GetKind with wrong kind should fail")
	}

	// Remove
	val, ok = table.Remove(h)
	if _, live := table.GetKind(h, 1); live {
		t.Fatal("GetKind should fail after Remove")
	}
	if !ok {
		t.Fatal("Remove failed")
	}
	if val != "test" {
		t.Fatalf("Expected 'test', got %v", val)
	}

	// Len should be 0
	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Remove")
	}
}

func TestTable_Observer(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	table.Subscribe(obs)

	// Insert should trigger EventCreated
	h, _ := table.Insert(7, "test")
	if len(obs.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventCreated {
		t.Fatal("Expected EventCreated")
	}
	if obs.events[0].Handle != h || obs.events[0].Kind != 7 {
		t.Fatal("Wrong handle or kind in event")
	}

	// Remove should trigger EventDropped
	table.Remove(h)
	if len(obs.events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(obs.events))
	}
	if obs.events[1].Type != EventDropped {
		t.Fatal("Expected EventDropped")
	}
	if obs.events[1].Kind != 7 {
		t.Fatalf("Expected kind 7 in drop event, got %d", obs.events[1].Kind)
	}

	// A second Remove is silent
	table.Remove(h)
	if len(obs.events) != 2 {
		t.Fatal("Second Remove should not emit an event")
	}

	// Unsubscribe
	table.Unsubscribe(obs)
	table.Insert(1, "test2")
	if len(obs.events) != 2 {
		t.Fatal("Should not receive events after Unsubscribe")
	}
}

func TestTable_Each(t *testing.T) {
	table := NewTable()

	table.Insert(1, "a")
	hb, _ := table.Insert(2, "b")
	table.Insert(1, "c")
	table.Remove(hb)

	seen := map[string]uint32{}
	table.Each(func(h Handle, kind uint32, value any) bool {
		seen[value.(string)] = kind
		return true
	})

	if len(seen) != 2 || seen["a"] != 1 || seen["c"] != 1 {
		t.Fatalf("Each visited %v, want live slots a and c", seen)
	}
	if _, ok := seen["b"]; ok {
		t.Fatal("Each should skip removed slots")
	}
}

func TestTable_Close(t *testing.T) {
	table := NewTable()

	table.Insert(1, "a")
	table.Insert(1, "b")

	if err := table.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Insert should fail after Close
	h, err := table.Insert(1, "c")
	if h != 0 || !errors.Is(err, ErrClosed) {
		t.Fatalf("Expected Insert to fail after Close, got %d, %v", h, err)
	}
}

func TestTable_Limit(t *testing.T) {
	table := NewLimitedTable(1)

	if _, err := table.Insert(1, "a"); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if _, err := table.Insert(1, "b"); !errors.Is(err, ErrFull) {
		t.Fatalf("Expected ErrFull, got %v", err)
	}
}

func TestTable_DropperInterface(t *testing.T) {
	table := NewTable()
	d := &countingDropper{}

	h, _ := table.Insert(1, d)
	table.Remove(h)
	table.Remove(h)

	if d.count != 1 {
		t.Fatalf("Expected Drop() to be called once, called %d times", d.count)
	}
}

func TestEventType_String(t *testing.T) {
	if EventCreated.String() != "created" || EventDropped.String() != "dropped" {
		t.Fatal("unexpected event names")
	}
	if EventType(9).String() != "unknown" {
		t.Fatal("unknown event type should stringify as unknown")
	}
}

func TestTable_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	table := NewTable()
	h, _ := table.Insert(3, "a")
	table.Remove(h)
	table.Remove(h)

	entries := logs.FilterMessage("slot event").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 slot events, got %d", len(entries))
	}
	if got := entries[1].ContextMap()["event"]; got != "dropped" {
		t.Fatalf("second event = %v, want dropped", got)
	}
	if got := entries[0].ContextMap()["kind"]; got != uint32(3) {
		t.Fatalf("kind = %v (%T), want 3", got, got)
	}
}

func TestSetLogger_Nil(t *testing.T) {
	prev := Logger()
	defer SetLogger(prev)

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger should never be nil")
	}
	table := NewTable()
	table.Insert(1, "a")
}
