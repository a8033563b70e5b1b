package components

import "github.com/tanema/gween"

// FadeData is a full-screen black overlay. Alpha runs from 1 to 0 after a
// death or level change. Owned by the session like the camera.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32
}
