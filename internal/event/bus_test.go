package event

import "testing"

type hit struct{ id int }
type points struct{ n uint32 }

func TestEmitReadPerType(t *testing.T) {
	b := NewBus()
	Emit(b, hit{1})
	Emit(b, hit{2})
	Emit(b, points{10})

	hits := Read[hit](b)
	if len(hits) != 2 || hits[0].id != 1 || hits[1].id != 2 {
		t.Fatalf("hits = %v, want [{1} {2}]", hits)
	}
	if got := Read[points](b); len(got) != 1 || got[0].n != 10 {
		t.Fatalf("points = %v", got)
	}
}

func TestReadUnknownTypeIsEmpty(t *testing.T) {
	b := NewBus()
	if got := Read[hit](b); len(got) != 0 {
		t.Errorf("Read = %v, want empty", got)
	}
}

func TestClearDropsEverything(t *testing.T) {
	b := NewBus()
	Emit(b, hit{1})
	Emit(b, points{1})
	b.Clear()

	if len(Read[hit](b)) != 0 || len(Read[points](b)) != 0 {
		t.Fatal("events survived Clear")
	}

	// Queues remain usable after Clear
	Emit(b, hit{3})
	if got := Read[hit](b); len(got) != 1 || got[0].id != 3 {
		t.Errorf("after Clear: %v", got)
	}
}
