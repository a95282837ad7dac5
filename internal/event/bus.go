// Package event provides typed, single-tick event queues.
//
// Producers Emit during a tick, consumers Read later in the same tick, and the
// scheduler calls Clear once every system has run. Nothing survives into the
// next tick, so a consumer ordered before its producer sees an empty queue
// instead of stale events.
package event

import "reflect"

// Bus holds one queue per event type.
type Bus struct {
	queues map[reflect.Type]any
}

func NewBus() *Bus {
	return &Bus{queues: make(map[reflect.Type]any)}
}

func queueOf[T any](b *Bus) *[]T {
	t := reflect.TypeOf((*T)(nil)).Elem()
	q, ok := b.queues[t]
	if !ok {
		s := make([]T, 0, 8)
		q = &s
		b.queues[t] = q
	}
	return q.(*[]T)
}

// Emit appends an event to the queue for its type.
func Emit[T any](b *Bus, ev T) {
	q := queueOf[T](b)
	*q = append(*q, ev)
}

// Read returns the events of type T emitted so far this tick, in emission
// order. The slice is only valid until Clear.
func Read[T any](b *Bus) []T {
	return *queueOf[T](b)
}

// Clear drops every pending event, keeping the queue capacity.
func (b *Bus) Clear() {
	for _, q := range b.queues {
		reflect.ValueOf(q).Elem().SetLen(0)
	}
}
