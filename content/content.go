// Package content embeds the built-in game catalog.
package content

import (
	"embed"
	"io/fs"
)

//go:embed games/*.yaml
var games embed.FS

// FS returns the built-in games as a flat filesystem of YAML files.
func FS() fs.FS {
	sub, err := fs.Sub(games, "games")
	if err != nil {
		panic(err)
	}
	return sub
}
