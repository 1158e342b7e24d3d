package core

// SoundType represents the game's audio cues
type SoundType int

const (
	SoundShipBullet    SoundType = iota // Ship fires
	SoundInvaderBullet                  // Invader fires
	SoundShipHit                        // Invader bullet hits ship
	SoundInvaderHit                     // Ship bullet hits invader
	SoundTypeCount
)

// String returns the cue name
func (s SoundType) String() string {
	switch s {
	case SoundShipBullet:
		return "ShipBullet"
	case SoundInvaderBullet:
		return "InvaderBullet"
	case SoundShipHit:
		return "ShipHit"
	case SoundInvaderHit:
		return "InvaderHit"
	default:
		return "Unknown"
	}
}
