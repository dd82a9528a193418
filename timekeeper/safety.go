//go:build !local

package timekeeper

const SafetyFactor = 1.0
