package assets

import (
	"path/filepath"

	"github.com/Faultbox/simpleforest/internal/scene"
)

// Texture file names, relative to the asset directory.
var textureFiles = [scene.TextureCount]string{
	scene.TextureWood:   "wood_texture.jpg",
	scene.TextureBark:   "bark_texture.jpg",
	scene.TextureLeaves: "leaves_texture.jpg",
	scene.TextureRoof:   "roof_shingles.jpg",
	scene.TextureStep:   "stone_step.jpg",
	scene.TextureWindow: "window_glass.jpg",
	scene.TextureDoor:   "door.jpg",
}

// Skybox faces in cubemap target order: +X, -X, +Y, -Y, +Z, -Z.
var skyboxFiles = [6]string{
	"right.jpg",
	"left.jpg",
	"top.jpg",
	"bottom.jpg",
	"front.jpg",
	"back.jpg",
}

// TexturePaths resolves scene texture files under an asset directory.
type TexturePaths struct {
	Dir string
}

// Texture returns the file for id, or "" for scene.TextureNone.
func (p TexturePaths) Texture(id scene.TextureID) string {
	if id <= scene.TextureNone || id >= scene.TextureCount {
		return ""
	}
	return filepath.Join(p.Dir, textureFiles[id])
}

// Skybox returns the six cubemap face files in GL target order.
func (p TexturePaths) Skybox() [6]string {
	var out [6]string
	for i, name := range skyboxFiles {
		out[i] = filepath.Join(p.Dir, name)
	}
	return out
}
