// Package fonts builds text faces from the bundled Go Regular font.
package fonts

import (
	"fmt"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Label FontName = "label"
	HUD   FontName = "hud"
	Title FontName = "title"
)

// DefaultSizes are the point sizes of the named faces.
var DefaultSizes = map[FontName]float64{
	Label: 16,
	HUD:   14,
	Title: 32,
}

func (f FontName) Get() font.Face {
	return getFont(f)
}

// UIFace wraps the face for widgets that draw with text/v2.
func (f FontName) UIFace() text.Face {
	return text.NewGoXFace(getFont(f))
}

var (
	parsed *truetype.Font
	fonts  = map[FontName]font.Face{}
	sized  = map[int]font.Face{}
)

// Load parses the font and builds every named face.
func Load() error {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("fonts: parse: %w", err)
	}
	parsed = f
	for name, size := range DefaultSizes {
		fonts[name] = newFace(size)
	}
	return nil
}

// Sized returns a face of the given point size, rounded to a whole point.
// Zero falls back to the label face.
func Sized(size float64) font.Face {
	if size <= 0 {
		return getFont(Label)
	}
	key := int(math.Round(size))
	if f, ok := sized[key]; ok {
		return f
	}
	f := newFace(float64(key))
	sized[key] = f
	return f
}

func newFace(size float64) font.Face {
	return truetype.NewFace(parsed, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
