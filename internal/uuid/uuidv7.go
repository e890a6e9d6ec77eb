package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string. Records appended in the same
// millisecond still sort after earlier ones because the random tail is
// monotonic within google/uuid's generator.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to a random v4 if the clock source fails
		return googleuuid.NewString()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
