package components

// CameraData is the bottom-left corner of the view in world units. It is
// owned by the session, not by a level world, so it survives reloads.
type CameraData struct {
	X, Y float64
}
