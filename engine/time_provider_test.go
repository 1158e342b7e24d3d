package engine

import (
	"testing"
	"time"
)

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMockTimeProvider(start)

	if !m.Now().Equal(start) {
		t.Fatalf("Expected %v, got %v", start, m.Now())
	}
	m.Advance(500 * time.Millisecond)
	if got := m.Now().Sub(start); got != 500*time.Millisecond {
		t.Errorf("Expected 500ms, got %v", got)
	}
}

func TestPausableClockElapsed(t *testing.T) {
	m := NewMockTimeProvider(time.Unix(0, 0))
	pc := NewPausableClock(m)

	if pc.Elapsed() != 0 {
		t.Fatalf("Expected 0 elapsed at start, got %v", pc.Elapsed())
	}

	m.Advance(time.Second)
	if pc.Elapsed() != time.Second {
		t.Errorf("Expected 1s, got %v", pc.Elapsed())
	}
}

func TestPausableClockPauseResume(t *testing.T) {
	m := NewMockTimeProvider(time.Unix(0, 0))
	pc := NewPausableClock(m)

	m.Advance(2 * time.Second)
	pc.Pause()
	pc.Pause() // second pause is a no-op

	m.Advance(5 * time.Second)
	if got := pc.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected elapsed frozen at 2s while paused, got %v", got)
	}
	if got := pc.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s pause duration, got %v", got)
	}

	pc.Resume()
	m.Advance(time.Second)
	if got := pc.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected 3s after resume, got %v", got)
	}
}

func TestPausableClockToggleAndRestart(t *testing.T) {
	m := NewMockTimeProvider(time.Unix(0, 0))
	pc := NewPausableClock(m)

	if !pc.Toggle() || !pc.IsPaused() {
		t.Fatal("Expected first toggle to pause")
	}
	m.Advance(time.Second)
	if pc.Toggle() || pc.IsPaused() {
		t.Fatal("Expected second toggle to resume")
	}

	m.Advance(time.Second)
	pc.Restart()
	if pc.Elapsed() != 0 || pc.TotalPauseDuration() != 0 {
		t.Errorf("Expected clean clock after Restart, got elapsed=%v paused=%v",
			pc.Elapsed(), pc.TotalPauseDuration())
	}
}

func TestTimeResourceAdvance(t *testing.T) {
	tr := &TimeResource{}

	tr.Advance(100 * time.Millisecond)
	if tr.FrameNumber != 1 || tr.DeltaTime != 0 {
		t.Errorf("First frame: expected frame 1 delta 0, got %d %v", tr.FrameNumber, tr.DeltaTime)
	}

	tr.Advance(116 * time.Millisecond)
	if tr.FrameNumber != 2 || tr.DeltaTime != 16*time.Millisecond {
		t.Errorf("Second frame: expected frame 2 delta 16ms, got %d %v", tr.FrameNumber, tr.DeltaTime)
	}
}
