package engine

import (
	"sync"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/core"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Component Stores (public for direct system access)
	Positions *Store[components.PositionComponent]
	Sprites   *Store[components.SpriteComponent]
	Bodies    *Store[components.BodyComponent]
	Moves     *Store[components.MoveActionComponent]
	Invaders  *Store[components.InvaderComponent]
	Ships     *Store[components.ShipComponent]
	Bullets   *Store[components.BulletComponent]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore

	eventQueue *EventQueue
	frame      func() int64

	systems []System
}

// NewWorld creates a new ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Positions:    NewStore[components.PositionComponent](),
		Sprites:      NewStore[components.SpriteComponent](),
		Bodies:       NewStore[components.BodyComponent](),
		Moves:        NewStore[components.MoveActionComponent](),
		Invaders:     NewStore[components.InvaderComponent](),
		Ships:        NewStore[components.ShipComponent](),
		Bullets:      NewStore[components.BulletComponent](),
		systems:      make([]System, 0),
	}

	w.allStores = []AnyStore{
		w.Positions,
		w.Sprites,
		w.Bodies,
		w.Moves,
		w.Invaders,
		w.Ships,
		w.Bullets,
	}

	return w
}

// CreateEntity reserves a new entity ID without adding any components
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// Destroying an entity twice is a no-op
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// Alive reports whether the entity still has any component, i.e. is still in the scene
func (w *World) Alive(e core.Entity) bool {
	if e == core.NoEntity {
		return false
	}
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (insertion sort, small N, stable for equal priorities)
	for i := len(w.systems) - 1; i > 0 && w.systems[i].Priority() < w.systems[i-1].Priority(); i-- {
		w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially in priority order
func (w *World) Update() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// SetEventMetadata wires the queue and frame source used by PushEvent
// Called once during GameContext initialization
func (w *World) SetEventMetadata(q *EventQueue, frame func() int64) {
	w.eventQueue = q
	w.frame = frame
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType EventType, payload any) {
	if w.eventQueue == nil {
		return // Not yet initialized
	}

	var frame int64
	if w.frame != nil {
		frame = w.frame()
	}
	w.eventQueue.Push(GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   frame,
	})
}
