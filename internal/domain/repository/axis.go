package repository

// Axis identifies one accelerometer measurement axis.
type Axis string

const (
	AxisH Axis = "H" // horizontal
	AxisV Axis = "V" // vertical
	AxisA Axis = "A" // axial
)

// IsValidAxis returns true if ax is a supported axis.
func IsValidAxis(ax Axis) bool {
	switch ax {
	case AxisH, AxisV, AxisA:
		return true
	default:
		return false
	}
}

// DefaultAxis returns the default analysis axis.
func DefaultAxis() Axis { return AxisH }

// NormalizeAxis converts a raw string to a valid axis (or default).
func NormalizeAxis(s string) Axis {
	if s == "" {
		return DefaultAxis()
	}
	ax := Axis(s)
	if IsValidAxis(ax) {
		return ax
	}
	return DefaultAxis()
}
