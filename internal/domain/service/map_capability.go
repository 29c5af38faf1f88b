package service

// MapCapability describes the live map renderer available to the client.
// Implementations are chosen at composition time.
type MapCapability interface {
	Name() string

	// LiveMapAvailable reports whether an interactive map surface exists
	LiveMapAvailable() bool

	// AnimatedMarkers reports whether marker coordinates can be animated
	AnimatedMarkers() bool
}
