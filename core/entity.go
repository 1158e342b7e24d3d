package core

// Entity is a unique identifier for an entity
type Entity uint64

// NoEntity is the zero entity, never allocated by a world
const NoEntity Entity = 0
