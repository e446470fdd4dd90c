package arena

import "testing"

func TestArena_TrackAndRelease(t *testing.T) {
	a := New()
	defer a.Release()

	a.Track(3)
	a.Track(2)
	if a.Allocated() != 5 {
		t.Fatalf("Allocated() = %d, want 5", a.Allocated())
	}
	if a.Released() {
		t.Fatal("Released() = true before Release()")
	}
}

func TestArena_ReleaseTwicePanics(t *testing.T) {
	a := New()
	a.Release()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on double Release")
		}
	}()
	a.Release()
}

func TestArena_TrackAfterReleasePanics(t *testing.T) {
	a := New()
	a.Release()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Track after Release")
		}
	}()
	a.Track(1)
}
