package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// TimeResource wraps frame time data for systems
// Updated by the scene at the start of every frame callback
type TimeResource struct {
	// Now is the scene clock reading handed to the frame callback
	Now time.Duration

	// DeltaTime is the scene time since the previous frame
	DeltaTime time.Duration

	// FrameNumber is the number of frames run by the scene, starting at 1
	FrameNumber int64
}

// Advance records a new frame at now
func (tr *TimeResource) Advance(now time.Duration) {
	if tr.FrameNumber > 0 {
		tr.DeltaTime = now - tr.Now
	}
	tr.Now = now
	tr.FrameNumber++
}

// Label is a HUD text label drawn at a fixed offset below the scene top edge
type Label struct {
	Text    string
	Offset  float64
	Color   tcell.Color
	Visible bool
}

// HUDResource holds the labels of the game scene, updated in place
type HUDResource struct {
	Score     Label
	Health    Label
	HighScore Label
}

// Labels returns the visible labels top to bottom
func (h *HUDResource) Labels() []Label {
	labels := make([]Label, 0, 3)
	for _, l := range []Label{h.Score, h.Health, h.HighScore} {
		if l.Visible {
			labels = append(labels, l)
		}
	}
	return labels
}
