package components

// Category is a physics category bitmask
type Category uint32

const (
	CategoryNone          Category = 0
	CategoryInvader       Category = 1 << 0
	CategoryShipBullet    Category = 1 << 1
	CategoryShip          Category = 1 << 2
	CategorySceneEdge     Category = 1 << 3
	CategoryInvaderBullet Category = 1 << 4
)

// Has reports whether any bit of other is set
func (c Category) Has(other Category) bool {
	return c&other != 0
}

// BodyComponent is the physics body of an entity
// Contacts are reported when one body's Category intersects the other's ContactTest
type BodyComponent struct {
	Category    Category
	ContactTest Category
	Collision   Category
	Dynamic     bool
}

// Tests reports whether b wants contact notifications with o
func (b BodyComponent) Tests(o BodyComponent) bool {
	return b.ContactTest.Has(o.Category) || o.ContactTest.Has(b.Category)
}
