package components

// ShipComponent marks the player ship
type ShipComponent struct {
	Health float64 // 0.0 to 1.0
}
