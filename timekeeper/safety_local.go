//go:build local

package timekeeper

// SafetyFactor scales elapsed time when benchmarking on a development
// machine, leaving slack for the slower judge.
const SafetyFactor = 0.85
