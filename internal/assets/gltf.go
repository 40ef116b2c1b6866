// Package assets locates the scene's texture files and loads optional glTF
// tree models.
package assets

import (
	"errors"
	"fmt"
	"sync"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/Faultbox/simpleforest/internal/geometry"
	"github.com/Faultbox/simpleforest/internal/logger"
	"github.com/Faultbox/simpleforest/internal/scene"
	"github.com/Faultbox/simpleforest/pkg/math"
)

// NormalizedExtent is the size of the largest bounding box side after a
// model is normalized.
const NormalizedExtent = 2.0

var errNoGeometry = errors.New("no triangle geometry")

// GLTFSource loads tree models from .gltf/.glb files. Every triangle
// primitive of every mesh is merged into one indexed mesh, normalized so its
// largest extent is NormalizedExtent. Loaded models are cached by path.
type GLTFSource struct {
	log   *zap.Logger
	cache modelCache
}

// NewGLTFSource creates a model source. A nil logger discards output.
func NewGLTFSource(log *zap.Logger) *GLTFSource {
	return &GLTFSource{log: logger.OrNop(log)}
}

// TryLoad implements scene.ModelSource. Failures are logged and reported
// as false so the caller can fall back to primitive trees.
func (s *GLTFSource) TryLoad(path string) (*scene.Model, bool) {
	if m, ok := s.cache.get(path); ok {
		return m, true
	}

	m, err := LoadGLTF(path)
	if err != nil {
		s.cache.put(path, nil)
		s.log.Warn("failed to load tree model", zap.String("path", path), zap.Error(err))
		return nil, false
	}

	s.log.Info("loaded tree model",
		zap.String("path", path),
		zap.Int("vertices", len(m.Mesh.Vertices)),
		zap.Int("triangles", m.Mesh.TriangleCount()),
		zap.Float32("scale_factor", m.ScaleFactor))
	s.cache.put(path, m)
	return m, true
}

// Stats reports how model lookups were served.
func (s *GLTFSource) Stats() CacheStats {
	return s.cache.snapshot()
}

// LoadGLTF reads a glTF document and returns its normalized geometry.
func LoadGLTF(path string) (*scene.Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	mesh := &geometry.IndexedMesh{Name: path}
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			if err := appendPrimitive(doc, prim, mesh); err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err)
			}
		}
	}
	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("%q: %w", path, errNoGeometry)
	}
	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	model := &scene.Model{Path: path, Mesh: mesh}
	normalize(model)
	return model, nil
}

// appendPrimitive reads one primitive's attributes into mesh. Missing
// normals default to +Y and missing UVs to zero; unindexed primitives get
// sequential indices.
func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *geometry.IndexedMesh) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("normals: %w", err)
		}
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("texcoords: %w", err)
		}
	}

	base := uint32(len(mesh.Vertices))
	for i, p := range positions {
		v := geometry.Vertex{Position: p, Normal: [3]float32{0, 1, 0}}
		if i < len(normals) {
			v.Normal = normals[i]
		}
		if i < len(uvs) {
			v.TexCoord = uvs[i]
		}
		mesh.Vertices = append(mesh.Vertices, v)
	}

	if prim.Indices == nil {
		for i := range positions {
			mesh.Indices = append(mesh.Indices, base+uint32(i))
		}
		return nil
	}

	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return fmt.Errorf("indices: %w", err)
	}
	for _, idx := range indices {
		mesh.Indices = append(mesh.Indices, base+idx)
	}
	return nil
}

// normalize scales the mesh so its largest extent is NormalizedExtent and
// records the factor and the scaled bounds. A degenerate (flat or point)
// mesh keeps factor 1.
func normalize(m *scene.Model) {
	lo, hi := bounds(m.Mesh.Vertices)

	size := hi.Sub(lo)
	maxSize := math32.Max(size.X, math32.Max(size.Y, size.Z))

	m.ScaleFactor = 1
	if maxSize > 0 {
		m.ScaleFactor = NormalizedExtent / maxSize
	}

	for i := range m.Mesh.Vertices {
		p := &m.Mesh.Vertices[i].Position
		p[0] *= m.ScaleFactor
		p[1] *= m.ScaleFactor
		p[2] *= m.ScaleFactor
	}
	m.Min = lo.Scale(m.ScaleFactor)
	m.Max = hi.Scale(m.ScaleFactor)
}

func bounds(vertices []geometry.Vertex) (lo, hi math.Vec3) {
	lo = math.Vec3From(vertices[0].Position)
	hi = lo
	for _, v := range vertices[1:] {
		p := math.Vec3From(v.Position)
		lo = math.Vec3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = math.Vec3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	return lo, hi
}

// CacheStats counts model lookups since the source was created.
type CacheStats struct {
	Entries  int // models held
	Hits     int // served from memory
	Misses   int // read from disk
	Failures int // misses that did not yield a model
}

func (c CacheStats) String() string {
	return fmt.Sprintf("%d cached, %d hits, %d loads, %d failed", c.Entries, c.Hits, c.Misses, c.Failures)
}

// modelCache holds loaded models keyed by path.
type modelCache struct {
	mu     sync.Mutex
	models map[string]*scene.Model
	stats  CacheStats
}

func (c *modelCache) get(path string) (*scene.Model, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.models[path]
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return m, ok
}

// put stores m, or counts a failure when m is nil.
func (c *modelCache) put(path string, m *scene.Model) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m == nil {
		c.stats.Failures++
		return
	}
	if c.models == nil {
		c.models = make(map[string]*scene.Model)
	}
	c.models[path] = m
	c.stats.Entries = len(c.models)
}

func (c *modelCache) snapshot() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
