package repository

// Unit selects the engineering unit a time series is analyzed in.
type Unit string

const (
	UnitAccelerationG      Unit = "accel_g"
	UnitAccelerationMmPerS Unit = "accel_mm_s2"
	UnitVelocityMmPerS     Unit = "velocity_mm_s"
)

// IsValidUnit returns true if u is a supported unit.
func IsValidUnit(u Unit) bool {
	switch u {
	case UnitAccelerationG, UnitAccelerationMmPerS, UnitVelocityMmPerS:
		return true
	default:
		return false
	}
}

// DefaultUnit returns the default analysis unit.
func DefaultUnit() Unit { return UnitVelocityMmPerS }

// NormalizeUnit converts a raw string to a valid unit (or default).
func NormalizeUnit(s string) Unit {
	if s == "" {
		return DefaultUnit()
	}
	u := Unit(s)
	if IsValidUnit(u) {
		return u
	}
	return DefaultUnit()
}
