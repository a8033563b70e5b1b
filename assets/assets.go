// Package assets embeds the shipped levels.
package assets

import (
	"embed"
	"io/fs"
)

// LevelDir is the directory of level files inside Levels.
const LevelDir = "levels"

//go:embed all:levels
var levels embed.FS

// Levels returns the embedded level files.
func Levels() fs.FS {
	return levels
}
