package assets

import "embed"

// FS holds the embedded level maps.
//
//go:embed levels
var FS embed.FS

// PlaygroundTMX is the path of the default level inside FS.
const PlaygroundTMX = "levels/playground.tmx"
