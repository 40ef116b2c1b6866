// Package renderer draws a scene.Scene with OpenGL: lit cabin and tree parts
// followed by the skybox.
package renderer

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/simpleforest/internal/assets"
	"github.com/Faultbox/simpleforest/internal/config"
	"github.com/Faultbox/simpleforest/internal/engine/camera"
	"github.com/Faultbox/simpleforest/internal/engine/shader"
	"github.com/Faultbox/simpleforest/internal/engine/shader/shaders"
	"github.com/Faultbox/simpleforest/internal/geometry"
	"github.com/Faultbox/simpleforest/internal/logger"
	"github.com/Faultbox/simpleforest/internal/scene"
	"github.com/Faultbox/simpleforest/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	FOV       float32 // vertical, degrees
	Near, Far float32
	ShaderDir string // empty uses the embedded shaders
	Textures  assets.TexturePaths
}

// ConfigFor derives renderer settings for a width x height drawable.
func ConfigFor(cfg *config.Config, width, height int) Config {
	gfx := cfg.Graphics
	return Config{
		Width:     width,
		Height:    height,
		FOV:       gfx.FOV,
		Near:      gfx.Near,
		Far:       gfx.Far,
		ShaderDir: cfg.Assets.ShaderDir,
		Textures:  assets.TexturePaths{Dir: cfg.Assets.Dir},
	}
}

// View is the per-frame camera state.
type View struct {
	Position math.Vec3
	View     math.Mat4
	Sky      math.Mat4 // View without translation
}

// CameraView captures cam's current view.
func CameraView(cam *camera.FlyCamera) View {
	return View{
		Position: cam.Position,
		View:     cam.ViewMatrix(),
		Sky:      cam.SkyboxView(),
	}
}

// Renderer owns every GPU resource of the scene.
type Renderer struct {
	config Config
	log    *zap.Logger

	basic   *shader.Program
	sky     *shader.Program
	watcher *shader.Watcher // nil with embedded shaders

	meshes    [scene.MeshCount]*GPUMesh
	uploaded  [scene.MeshCount]*geometry.IndexedMesh // source of each upload, to spot swaps
	skybox    *GPUMesh
	textures  [scene.TextureCount]uint32
	skyboxTex uint32

	projection math.Mat4
}

// New creates a renderer and uploads the scene's meshes and textures.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config, sc *scene.Scene, log *zap.Logger) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.OrNop(log),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	if r.basic, err = r.loadProgram("basic", shaders.BasicVertexShader, shaders.BasicFragmentShader); err != nil {
		return nil, err
	}
	if r.sky, err = r.loadProgram("skybox", shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader); err != nil {
		r.basic.Delete()
		return nil, err
	}

	if cfg.ShaderDir != "" {
		if r.watcher, err = shader.Watch(cfg.ShaderDir, r.log.Named("shaders")); err != nil {
			r.log.Warn("shader hot reload disabled", zap.Error(err))
		}
	}

	r.SyncMeshes(sc)
	r.skybox = UploadPositions(sc.Skybox)
	r.textures = loadTextures(cfg.Textures, r.log)
	r.skyboxTex = loadSkybox(cfg.Textures, r.log)

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// loadProgram reads basic.vert/basic.frag style files from ShaderDir when
// set, otherwise compiles the embedded sources.
func (r *Renderer) loadProgram(name, vertSrc, fragSrc string) (*shader.Program, error) {
	if dir := r.config.ShaderDir; dir != "" {
		return shader.LoadProgram(name,
			filepath.Join(dir, name+".vert"),
			filepath.Join(dir, name+".frag"))
	}
	return shader.NewProgram(name, vertSrc, fragSrc)
}

// reloadShaders recompiles programs edited on disk. A program that fails
// to compile is logged and the previous one stays in use.
func (r *Renderer) reloadShaders() {
	for _, name := range r.watcher.Changed() {
		var slot **shader.Program
		var vert, frag string
		switch name {
		case "basic":
			slot, vert, frag = &r.basic, shaders.BasicVertexShader, shaders.BasicFragmentShader
		case "skybox":
			slot, vert, frag = &r.sky, shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader
		default:
			continue
		}
		p, err := r.loadProgram(name, vert, frag)
		if err != nil {
			r.log.Warn("shader reload failed", zap.String("program", name), zap.Error(err))
			continue
		}
		(*slot).Delete()
		*slot = p
		r.log.Info("shader reloaded", zap.String("program", name))
	}
}

// SyncMeshes uploads scene meshes that are new or were replaced since the
// last call, e.g. after a tree model is loaded from the panel.
func (r *Renderer) SyncMeshes(sc *scene.Scene) {
	for id, m := range sc.Meshes {
		if r.uploaded[id] == m {
			continue
		}
		r.meshes[id].Delete()
		r.meshes[id] = nil
		r.uploaded[id] = m
		if m != nil {
			r.meshes[id] = UploadIndexed(m)
			r.log.Debug("mesh uploaded",
				zap.String("name", m.Name),
				zap.Int("vertices", len(m.Vertices)),
				zap.Int("triangles", m.TriangleCount()))
		}
	}
}

// Resize updates the viewport and projection.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.projection = math.Perspective(math.Radians(r.config.FOV), float32(width)/float32(height), r.config.Near, r.config.Far)
}

// Draw renders one frame: all scene parts, then the skybox.
func (r *Renderer) Draw(sc *scene.Scene, v View) {
	r.reloadShaders()

	// ImGui leaves blending and scissoring on between frames.
	gl.Disable(gl.BLEND)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.basic.Use()
	r.basic.SetVec3("lightDir", sc.Lighting.Direction)
	r.basic.SetVec3("lightColor", sc.Lighting.Color)
	r.basic.SetVec3("viewPos", v.Position.Array())
	r.basic.SetMat4("proj", r.projection)
	r.basic.SetMat4("view", v.View)
	r.basic.SetInt("texture_diffuse1", 0)
	gl.ActiveTexture(gl.TEXTURE0)

	for _, p := range sc.Parts() {
		r.drawPart(sc, p)
	}

	r.drawSkybox(v)
	gl.BindVertexArray(0)
}

func (r *Renderer) drawPart(sc *scene.Scene, p scene.Part) {
	mesh := r.meshes[p.Mesh]
	if mesh == nil {
		return
	}

	mat, textured := sc.Material(p)
	tex := r.textures[p.Texture]
	if textured && tex == 0 {
		// Texture failed to load: fall back to the solid color.
		mat, textured = sc.Palette[p.Material], false
	}
	if !textured {
		tex = 0
	}

	gl.BindTexture(gl.TEXTURE_2D, tex)
	r.basic.SetBool("useTexture", textured)
	r.basic.SetMat4("model", p.Model)
	r.basic.SetVec3("material.ambient", mat.Ambient)
	r.basic.SetVec3("material.diffuse", mat.Diffuse)
	r.basic.SetVec3("material.specular", mat.Specular)
	r.basic.SetFloat("material.shininess", mat.Shininess)
	mesh.Draw()
}

// drawSkybox draws the sky cube last with LEQUAL depth and depth writes
// off, then restores the default depth state.
func (r *Renderer) drawSkybox(v View) {
	if r.skyboxTex == 0 {
		return
	}

	gl.DepthMask(false)
	gl.DepthFunc(gl.LEQUAL)

	r.sky.Use()
	r.sky.SetMat4("proj", r.projection)
	r.sky.SetMat4("view", v.Sky)
	r.sky.SetInt("skybox", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, r.skyboxTex)
	r.skybox.Draw()

	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)
}

// Close releases every GPU resource.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if err := r.watcher.Close(); err != nil {
		r.log.Warn("closing shader watcher", zap.Error(err))
	}
	r.watcher = nil
	for i := range r.meshes {
		r.meshes[i].Delete()
		r.meshes[i] = nil
	}
	r.skybox.Delete()
	for i := range r.textures {
		if r.textures[i] != 0 {
			gl.DeleteTextures(1, &r.textures[i])
		}
	}
	if r.skyboxTex != 0 {
		gl.DeleteTextures(1, &r.skyboxTex)
	}
	r.basic.Delete()
	r.sky.Delete()
}
