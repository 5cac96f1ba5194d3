// Package geo holds the location verification hook used by
// geolocation-gated events.
package geo

// StaticVerifier approves or rejects every entrant outright. It stands in
// until a real location provider is wired up; with Allow=false,
// geolocation-gated events reject direct registrations (fail closed).
type StaticVerifier struct {
	Allow bool
}

func (v StaticVerifier) Verify(eventID, userID string) (bool, error) {
	return v.Allow, nil
}
