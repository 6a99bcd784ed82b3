package assets

import "embed"

// FS holds the bundled texture images, used when no assets directory is given.
//
//go:embed unlit-bomb.bmp rocket.bmp
var FS embed.FS
