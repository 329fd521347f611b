package engine

// ClassEligibility reports whether a character currently meets a class's thresholds
type ClassEligibility struct {
	Name     string
	Eligible bool
}

// Requirement is a single minimum attribute score for a class
type Requirement struct {
	Attribute string
	Minimum   int
}
