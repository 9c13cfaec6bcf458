package typedesc

import (
	stderrors "errors"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/grbtype/errors"
	"github.com/wippyai/grbtype/resource"
)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for registration and deallocation events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithLimit caps the number of live user-defined types. 0 means unlimited.
func WithLimit(n int) Option {
	return func(s *Store) {
		s.limit = n
	}
}

// Store registers user-defined types and owns their storage.
// It is safe for concurrent use.
type Store struct {
	table  *resource.Table
	names  map[string]*Type
	logger *zap.Logger
	limit  int
	mu     sync.Mutex
	closed bool
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		names: make(map[string]*Type),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = Logger()
	}
	s.table = resource.NewLimitedTable(s.limit)
	return s
}

// New registers a user-defined type of the given name and size in bytes.
// ops may be nil.
func (s *Store) New(name string, size uintptr, ops *Ops) (*Type, error) {
	if name == "" {
		return nil, errors.InvalidValue(errors.PhaseRegister, "", "type name is empty")
	}
	if size == 0 {
		return nil, errors.InvalidValue(errors.PhaseRegister, name, "type size must be positive")
	}
	if _, ok := BuiltinByName(name); ok {
		return nil, errors.InvalidValue(errors.PhaseRegister, name, "name is taken by a built-in type")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errors.Closed(errors.PhaseRegister)
	}
	if _, ok := s.names[name]; ok {
		return nil, errors.InvalidValue(errors.PhaseRegister, name, "name is already registered")
	}

	t := &Type{
		code:  UDTCode,
		name:  name,
		size:  size,
		ops:   ops,
		store: s,
	}
	t.magic.Store(uint64(MagicInvalid))

	slot, err := s.table.Insert(uint32(UDTCode), typeCell{t})
	if err != nil {
		return nil, s.insertError(name, size, err)
	}
	t.slot = slot
	s.names[name] = t
	t.magic.Store(uint64(MagicLive))

	s.logger.Debug("registered type",
		zap.String("name", name),
		zap.Uint64("size", uint64(size)),
		zap.Uint32("slot", uint32(slot)))
	return t, nil
}

// NewOwned registers a user-defined type and wraps it in an exclusive owner.
func (s *Store) NewOwned(name string, size uintptr, ops *Ops) (*Owned, error) {
	t, err := s.New(name, size, ops)
	if err != nil {
		return nil, err
	}
	return &Owned{t: t}, nil
}

// Lookup finds a type by name. Built-in types are searched first.
func (s *Store) Lookup(name string) (*Type, bool) {
	if t, ok := BuiltinByName(name); ok {
		return t, true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.names[name]
	return t, ok
}

// Types returns the live user-defined types sorted by name.
func (s *Store) Types() []*Type {
	out := make([]*Type, 0, s.table.Len())
	s.table.Each(func(_ resource.Handle, kind uint32, value any) bool {
		if c, ok := value.(typeCell); ok && kind == uint32(UDTCode) && c.t.Live() {
			out = append(out, c.t)
		}
		return true
	})

	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Len returns the number of live user-defined types.
func (s *Store) Len() int {
	return s.table.Len()
}

// Stats returns storage allocation counters.
func (s *Store) Stats() resource.Stats {
	return s.table.Stats()
}

// Subscribe adds an observer for storage lifecycle events.
func (s *Store) Subscribe(o resource.Observer) {
	s.table.Subscribe(o)
}

// Unsubscribe removes an observer.
func (s *Store) Unsubscribe(o resource.Observer) {
	s.table.Unsubscribe(o)
}

// Close frees every live user-defined type and rejects further registrations.
// Descriptors held elsewhere are left tagged freed.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	live := make([]*Type, 0, len(s.names))
	for _, t := range s.names {
		live = append(live, t)
	}
	s.mu.Unlock()

	for _, t := range live {
		Free(&t)
	}
	return s.table.Close()
}

// owns reports whether t's slot in this store still holds t.
func (s *Store) owns(t *Type) bool {
	v, ok := s.table.GetKind(t.slot, uint32(UDTCode))
	if !ok {
		return false
	}
	c, ok := v.(typeCell)
	return ok && c.t == t
}

func (s *Store) insertError(name string, size uintptr, err error) error {
	kind := errors.KindOutOfMemory
	if stderrors.Is(err, resource.ErrClosed) {
		kind = errors.KindClosed
	}
	b := errors.New(errors.PhaseRegister, kind).
		Path("store", "new").
		TypeName(name).
		Value(size).
		Cause(err)
	if stderrors.Is(err, resource.ErrFull) {
		b.Detail("type store limit of %d reached", s.limit)
	} else {
		b.Detail("allocate type storage")
	}
	return b.Build()
}

func (s *Store) dealloc(t *Type) {
	s.mu.Lock()
	if s.names[t.name] == t {
		delete(s.names, t.name)
	}
	s.mu.Unlock()

	slot := t.slot
	if _, ok := s.table.Remove(slot); !ok {
		s.logger.Warn("type storage already reclaimed",
			zap.String("name", t.name),
			zap.Uint32("slot", uint32(slot)))
		return
	}
	s.logger.Debug("freed type",
		zap.String("name", t.name),
		zap.Uint32("slot", uint32(slot)))
}
