package renderer

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/simpleforest/internal/assets"
	"github.com/Faultbox/simpleforest/internal/engine/texture"
	"github.com/Faultbox/simpleforest/internal/scene"
)

// Upload2D uploads an RGBA image as a repeating, mipmapped 2D texture.
func Upload2D(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Rect.Dx()), int32(img.Rect.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// UploadCubemap uploads six faces in +X, -X, +Y, -Y, +Z, -Z order.
// Faces that are nil are skipped and sample as black.
func UploadCubemap(faces [6]*image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex)
	for i, img := range faces {
		if img == nil {
			continue
		}
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA,
			int32(img.Rect.Dx()), int32(img.Rect.Dy()),
			0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return tex
}

// loadTextures uploads every scene texture. A file that cannot be read is
// logged and left as texture 0, which the renderer draws untextured.
func loadTextures(paths assets.TexturePaths, log *zap.Logger) [scene.TextureCount]uint32 {
	var out [scene.TextureCount]uint32
	for id := scene.TextureNone + 1; id < scene.TextureCount; id++ {
		path := paths.Texture(id)
		img, err := texture.Decode(path)
		if err != nil {
			log.Warn("texture unavailable, drawing solid color", zap.String("path", path), zap.Error(err))
			continue
		}
		out[id] = Upload2D(img)
		log.Debug("texture loaded",
			zap.String("path", path),
			zap.Int("width", img.Rect.Dx()),
			zap.Int("height", img.Rect.Dy()))
	}
	return out
}

// loadSkybox uploads the six sky faces. Missing faces are logged.
func loadSkybox(paths assets.TexturePaths, log *zap.Logger) uint32 {
	var faces [6]*image.RGBA
	loaded := 0
	for i, path := range paths.Skybox() {
		img, err := texture.Decode(path)
		if err != nil {
			log.Warn("skybox face unavailable", zap.String("path", path), zap.Error(err))
			continue
		}
		faces[i] = img
		loaded++
	}
	if loaded == 0 {
		return 0
	}
	return UploadCubemap(faces)
}
