// Package resource provides the slot table that backs user-defined type
// descriptors.
//
// Every user-defined descriptor owns exactly one slot. Allocating the
// descriptor inserts a slot; deallocating removes it. The table never hands
// out storage for built-in descriptors, which are process-wide singletons.
//
// # Slot Table
//
// The Table maps integer handles to Go values:
//
//	table := resource.NewTable()
//
//	// Insert a value, get a handle
//	handle, err := table.Insert(kind, value)
//
//	// Retrieve value by handle, checking its kind
//	value, ok := table.GetKind(handle, kind)
//
//	// Free the slot; a second Remove is a no-op
//	value, ok := table.Remove(handle)
//
// Freed handles are recycled through a free list, so a stale handle may later
// name a different value. Callers that keep handles around must validate the
// value they get back.
//
// # Observers
//
// Register observers to track slot lifecycle events:
//
//	type logObserver struct{}
//
//	func (logObserver) OnResourceEvent(e resource.Event) {
//	    log.Printf("slot %d %s", e.Handle, e.Type)
//	}
//
//	table.Subscribe(logObserver{})
//
// # Accounting
//
// Stats reports how many slots were ever allocated and freed. Tests use it to
// assert that storage was reclaimed exactly once.
package resource
