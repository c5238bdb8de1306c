package helpers

// Per-operation page size defaults and ceilings. Out-of-range values are
// silently corrected, never rejected.
const (
	DefaultDepartmentLimit = 20
	MaxDepartmentLimit     = 50

	DefaultCourseLimit = 50
	MaxCourseLimit     = 100

	DefaultNameLimit = 20
	MaxNameLimit     = 50

	DefaultTagLimit = 20
	MaxTagLimit     = 100
)

// Clamp constrains n into the closed range [min, max].
func Clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// ClampLimit resolves a caller-supplied limit: nil means "use the default",
// anything else is clamped into [1, max].
func ClampLimit(limit *int, def, max int) int {
	if limit == nil {
		return Clamp(def, 1, max)
	}
	return Clamp(*limit, 1, max)
}

// ClampOffset resolves a caller-supplied offset to a non-negative value.
func ClampOffset(offset *int) int {
	if offset == nil || *offset < 0 {
		return 0
	}
	return *offset
}
