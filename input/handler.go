package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/render"
)

// Sink receives translated events; the scene director implements it
type Sink interface {
	PushEvent(eventType engine.EventType, payload any)
}

// ViewportSource provides the current scene-to-cell mapping
type ViewportSource interface {
	Viewport() render.Viewport
}

// Handler converts tcell events into game events
// The sink must be safe for pushes from any goroutine
type Handler struct {
	keys     *KeyTable
	cfg      config.InputConfig
	viewport ViewportSource
	sink     Sink
	onResize func()

	pressed bool
	lastCol int
}

// NewHandler creates an input handler
func NewHandler(keys *KeyTable, cfg config.InputConfig, viewport ViewportSource, sink Sink) *Handler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Handler{
		keys:     keys,
		cfg:      cfg,
		viewport: viewport,
		sink:     sink,
	}
}

// OnResize sets the callback run for terminal resize events
func (h *Handler) OnResize(fn func()) {
	h.onResize = fn
}

// Handle translates one event; returns false when the game should quit
func (h *Handler) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleIntent(h.keys.Lookup(ev))

	case *tcell.EventMouse:
		if h.cfg.Mouse {
			h.handleMouse(ev)
		}

	case *tcell.EventResize:
		if h.onResize != nil {
			h.onResize()
		}
	}
	return true
}

func (h *Handler) handleIntent(intent IntentType) bool {
	switch intent {
	case IntentQuit:
		return false
	case IntentPause:
		h.sink.PushEvent(engine.EventPauseToggle, nil)
	case IntentMute:
		h.sink.PushEvent(engine.EventMuteToggle, nil)
	case IntentToggleStatus:
		h.sink.PushEvent(engine.EventStatusToggle, nil)
	case IntentTap:
		h.sink.PushEvent(engine.EventTap, nil)
	case IntentMoveLeft:
		h.move(-1)
	case IntentMoveRight:
		h.move(1)
	}
	return true
}

// move nudges the ship, or feeds a tilt reading when tilt input is enabled
func (h *Handler) move(dir float64) {
	if h.cfg.Tilt {
		h.sink.PushEvent(engine.EventTilt, dir)
		return
	}
	h.sink.PushEvent(engine.EventShipMove, &engine.ShipMovePayload{X: dir * h.cfg.KeyStep})
}

// handleMouse taps on button press and drags the ship while the button is held
func (h *Handler) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case held && !h.pressed:
		h.pressed = true
		h.lastCol = col
		h.sink.PushEvent(engine.EventTap, nil)

	case held && col != h.lastCol:
		h.lastCol = col
		x := h.viewport.Viewport().ToScene(col, row).X
		h.sink.PushEvent(engine.EventShipMove, &engine.ShipMovePayload{X: x, Absolute: true})

	case !held:
		h.pressed = false
	}
}
