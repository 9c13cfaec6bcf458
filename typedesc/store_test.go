package typedesc

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/wippyai/grbtype/errors"
	"github.com/wippyai/grbtype/resource"
)

type eventRecorder struct {
	events []resource.Event
}

func (r *eventRecorder) OnResourceEvent(e resource.Event) {
	r.events = append(r.events, e)
}

func TestStore_New(t *testing.T) {
	s := NewStore()
	d, err := s.New("gauss", 16, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if d.Name() != "gauss" || d.Size() != 16 {
		t.Fatalf("got %s, want gauss of 16 bytes", d)
	}
	if d.Code() != UDTCode || d.Class() != UserDefined {
		t.Fatalf("code=%s class=%s", d.Code(), d.Class())
	}
	if !d.Live() {
		t.Fatalf("new type should be live, got %s", d.Magic())
	}
	if got, ok := s.Lookup("gauss"); !ok || got != d {
		t.Fatal("Lookup should find the registered type")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
}

func TestStore_NewErrors(t *testing.T) {
	s := NewStore()
	if _, err := s.New("gauss", 16, nil); err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct {
		name     string
		typeName string
		size     uintptr
		kind     errors.Kind
	}{
		{"empty name", "", 4, errors.KindInvalidValue},
		{"zero size", "zero", 0, errors.KindInvalidValue},
		{"built-in C name", "double", 8, errors.KindInvalidValue},
		{"built-in code name", "fp64", 8, errors.KindInvalidValue},
		{"duplicate", "gauss", 16, errors.KindInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.New(tt.typeName, tt.size, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			target := &errors.Error{Phase: errors.PhaseRegister, Kind: tt.kind}
			if !stderrors.Is(err, target) {
				t.Fatalf("error %v does not match %s", err, tt.kind)
			}
		})
	}
}

func TestStore_NameReusableAfterFree(t *testing.T) {
	s := NewStore()
	d, _ := s.New("gauss", 16, nil)
	Free(&d)

	d2, err := s.New("gauss", 32, nil)
	if err != nil {
		t.Fatalf("re-registering a freed name failed: %v", err)
	}
	if d2.Size() != 32 {
		t.Fatalf("Size = %d, want 32", d2.Size())
	}
}

func TestStore_Limit(t *testing.T) {
	s := NewStore(WithLimit(1))
	d, err := s.New("a", 1, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = s.New("b", 1, nil)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRegister, Kind: errors.KindOutOfMemory}) {
		t.Fatalf("expected out_of_memory, got %v", err)
	}
	var se *errors.Error
	if !stderrors.As(err, &se) {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if !stderrors.Is(err, resource.ErrFull) {
		t.Fatal("limit error should wrap resource.ErrFull")
	}
	if se.TypeName != "b" || len(se.Path) != 2 || se.Value != uintptr(1) {
		t.Fatalf("unexpected error context: %+v", se)
	}
	if !strings.Contains(se.Detail, "limit of 1") {
		t.Fatalf("Detail = %q", se.Detail)
	}
	if _, ok := s.Lookup("b"); ok {
		t.Fatal("failed registration must not be visible")
	}

	Free(&d)
	if _, err := s.New("b", 1, nil); err != nil {
		t.Fatalf("New after Free failed: %v", err)
	}
}

func TestStore_LookupBuiltin(t *testing.T) {
	s := NewStore()
	for _, name := range []string{"int32_t", "int32"} {
		got, ok := s.Lookup(name)
		if !ok || got != Int32 {
			t.Fatalf("Lookup(%q) = %v, %v; want Int32", name, got, ok)
		}
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("Lookup of unknown name should fail")
	}
}

func TestStore_Types(t *testing.T) {
	s := NewStore()
	s.New("zeta", 1, nil)
	s.New("alpha", 2, nil)
	mid, _ := s.New("mid", 3, nil)
	Free(&mid)

	types := s.Types()
	if len(types) != 2 {
		t.Fatalf("Types returned %d entries, want 2", len(types))
	}
	if types[0].Name() != "alpha" || types[1].Name() != "zeta" {
		t.Fatalf("Types not sorted: %v", types)
	}
}

func TestStore_Observer(t *testing.T) {
	s := NewStore()
	rec := &eventRecorder{}
	s.Subscribe(rec)

	d, _ := s.New("gauss", 16, nil)
	stale := d
	Free(&d)
	Free(&stale)

	if len(rec.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(rec.events))
	}
	if rec.events[0].Type != resource.EventCreated || rec.events[1].Type != resource.EventDropped {
		t.Fatalf("unexpected event sequence: %v", rec.events)
	}
	if rec.events[1].Kind != uint32(UDTCode) {
		t.Fatalf("drop event kind = %d, want %d", rec.events[1].Kind, UDTCode)
	}

	s.Unsubscribe(rec)
	s.New("other", 1, nil)
	if len(rec.events) != 2 {
		t.Fatal("should not receive events after Unsubscribe")
	}
}

func TestStore_Close(t *testing.T) {
	s := NewStore()
	a, _ := s.New("a", 1, nil)
	b, _ := s.New("b", 2, nil)
	held := b

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if a.Magic() != MagicFreed || b.Magic() != MagicFreed {
		t.Fatal("Close should tag every live type freed")
	}
	if st := s.Stats(); st.Allocs != 2 || st.Frees != 2 {
		t.Fatalf("Stats = %+v, want 2/2", st)
	}

	// Releasing a descriptor the store already reclaimed is a no-op.
	Free(&held)
	if held != nil {
		t.Fatal("slot should be nil")
	}
	if st := s.Stats(); st.Frees != 2 {
		t.Fatalf("Frees = %d, want 2", st.Frees)
	}

	_, err := s.New("c", 1, nil)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRegister, Kind: errors.KindClosed}) {
		t.Fatalf("expected closed error, got %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}
