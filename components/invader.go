package components

import "github.com/gdamore/tcell/v2"

// InvaderType selects the colour variant of an invader
type InvaderType int

const (
	InvaderA InvaderType = iota // Red
	InvaderB                    // Green
	InvaderC                    // Blue
)

// InvaderTypeForRow rotates the three variants across grid rows
func InvaderTypeForRow(row int) InvaderType {
	switch row % 3 {
	case 0:
		return InvaderA
	case 1:
		return InvaderB
	default:
		return InvaderC
	}
}

// Color returns the fill colour for the variant
func (t InvaderType) Color() tcell.Color {
	switch t {
	case InvaderA:
		return tcell.ColorRed
	case InvaderB:
		return tcell.ColorGreen
	default:
		return tcell.ColorBlue
	}
}

// String returns the variant letter
func (t InvaderType) String() string {
	switch t {
	case InvaderA:
		return "A"
	case InvaderB:
		return "B"
	case InvaderC:
		return "C"
	default:
		return "?"
	}
}

// InvaderComponent marks an enemy belonging to the grid
type InvaderComponent struct {
	Type InvaderType
	Row  int
	Col  int
}
