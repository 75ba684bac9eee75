// Package renderer draws the scene parts with the easing program, or with a
// built-in flat program and CPU displacement when the easing program is
// missing or fails to compile.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshease/internal/animation"
	"github.com/Faultbox/meshease/internal/easing"
	"github.com/Faultbox/meshease/internal/engine/shader"
	"github.com/Faultbox/meshease/internal/mesh"
	"github.com/Faultbox/meshease/internal/resource"
	"github.com/Faultbox/meshease/internal/scene"
	"github.com/Faultbox/meshease/pkg/math"
)

// Attribute locations shared by the easing shaders and the fallback.
const (
	LocPosition      = 0
	LocNormal        = 1
	LocEaseOffset    = 2
	LocEaseMagnitude = 3
	LocCrazy         = 4
	LocColorWeight   = 5
)

// Matrix uniform names.
const (
	UniformProjection = "projectionMatrix"
	UniformModelView  = "modelViewMatrix"
	UniformNormal     = "normalMatrix"
)

// Renderer owns the GL objects of every uploaded part.
type Renderer struct {
	log *zap.Logger

	program  *shader.Program
	revision int
	fallback *shader.Program
	cpuPath  bool

	meshes map[*scene.Part]*gpuMesh

	particles     *shader.Program
	particleVAO   uint32
	particleVBO   uint32
	particleCount int32
}

type gpuMesh struct {
	vao       uint32
	positions uint32 // rewritten every frame on the CPU path
	normals   uint32
	offsets   uint32
	mags      uint32
	crazy     uint32
	weights   uint32
	ebo       uint32
	count     int32

	source  []math.Vec3 // untransformed positions for the CPU path
	scratch []float32
	weight  []float32
	dirty   bool // positions buffer holds CPU-displaced values
}

// New creates a renderer. It must be called after the GL context exists.
func New(log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	fallback, err := shader.CompileProgram(fallbackVertex, fallbackFragment)
	if err != nil {
		return nil, fmt.Errorf("fallback program: %w", err)
	}

	particles, err := shader.CompileProgram(particleVertex, particleFragment)
	if err != nil {
		return nil, fmt.Errorf("particle program: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return &Renderer{
		log:       log,
		fallback:  shader.Wrap(fallback),
		cpuPath:   true,
		meshes:    make(map[*scene.Part]*gpuMesh),
		particles: shader.Wrap(particles),
	}, nil
}

// SetShaderPair recompiles the easing program when the pair's revision
// changes. An unusable or broken pair selects the CPU path.
func (r *Renderer) SetShaderPair(pair resource.ShaderPair, ok bool) {
	if !ok || pair.Revision == r.revision {
		return
	}
	r.revision = pair.Revision

	p, err := shader.Compile(pair)
	if err != nil {
		r.log.Warn("easing program unavailable, displacing on the CPU", zap.Error(err))
		r.cpuPath = true
		return
	}
	if r.program != nil {
		r.program.Delete()
	}
	r.program = p
	r.cpuPath = false
	r.log.Info("easing program compiled", zap.Int("revision", pair.Revision))
}

// CPUPath reports whether displacement runs on the CPU.
func (r *Renderer) CPUPath() bool {
	return r.cpuPath
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Begin clears the current target.
func (r *Renderer) Begin(red, green, blue float32) {
	gl.ClearColor(red, green, blue, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders every visible part, then the particle field.
func (r *Renderer) Draw(s *scene.Scene, u *animation.Uniforms, view, proj math.Mat4) {
	normal := view.NormalMatrix()
	prog := r.program
	if r.cpuPath {
		prog = r.fallback
	}
	prog.Use()
	prog.SetMat4(UniformProjection, proj.Ptr())
	prog.SetMat4(UniformModelView, view.Ptr())
	prog.SetMat3(UniformNormal, normal.Ptr())

	if r.cpuPath {
		prog.SetFloat("maxY", u.MaxY)
	} else {
		for name, v := range u.Named() {
			prog.SetFloat(name, v)
		}
	}

	params := u.Params()
	for _, part := range s.VisibleParts() {
		m := r.upload(part)
		if r.cpuPath {
			m.displace(params, &part.Attributes)
		} else if m.dirty {
			m.restore()
		}
		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)

	r.drawParticles(s.Particles, view, proj)
}

// drawParticles draws the background field with additive blending. The
// points are uploaded on first use and never change.
func (r *Renderer) drawParticles(points []math.Vec3, view, proj math.Mat4) {
	if len(points) == 0 {
		return
	}
	if r.particleVAO == 0 {
		gl.GenVertexArrays(1, &r.particleVAO)
		gl.BindVertexArray(r.particleVAO)
		r.particleVBO = vertexBuffer(LocPosition, 3, flatten(points), gl.STATIC_DRAW)
		r.particleCount = int32(len(points))
	}

	r.particles.Use()
	r.particles.SetMat4(UniformProjection, proj.Ptr())
	r.particles.SetMat4(UniformModelView, view.Ptr())
	r.particles.SetFloat("pointSize", scene.ParticleSize)
	if loc := r.particles.Uniform("color"); loc >= 0 {
		c := scene.ParticleColor
		gl.Uniform3f(loc, c[0], c[1], c[2])
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)

	gl.BindVertexArray(r.particleVAO)
	gl.DrawArrays(gl.POINTS, 0, r.particleCount)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

func (r *Renderer) upload(part *scene.Part) *gpuMesh {
	if m, ok := r.meshes[part]; ok {
		return m
	}
	g := &part.Geometry
	a := &part.Attributes
	n := g.VertexCount()

	m := &gpuMesh{
		count:   int32(len(g.Indices)),
		source:  append([]math.Vec3(nil), g.Positions...),
		scratch: make([]float32, 0, n*3),
		weight:  make([]float32, n),
	}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	m.positions = vertexBuffer(LocPosition, 3, flatten(g.Positions), gl.DYNAMIC_DRAW)
	normals := g.Normals
	if len(normals) != n {
		normals = make([]math.Vec3, n)
	}
	m.normals = vertexBuffer(LocNormal, 3, flatten(normals), gl.STATIC_DRAW)
	m.offsets = vertexBuffer(LocEaseOffset, 1, a.EaseOffset, gl.STATIC_DRAW)
	m.mags = vertexBuffer(LocEaseMagnitude, 1, a.EaseMagnitude, gl.STATIC_DRAW)
	m.crazy = vertexBuffer(LocCrazy, 1, a.Crazy, gl.STATIC_DRAW)
	m.weights = vertexBuffer(LocColorWeight, 1, m.weight, gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	if len(g.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	r.meshes[part] = m
	r.log.Debug("part uploaded", zap.String("part", part.Name), zap.Int("vertices", n))
	return m
}

// displace evaluates the easing for every vertex and rewrites the position
// and weight buffers.
func (m *gpuMesh) displace(p easing.Params, a *mesh.Attributes) {
	m.scratch = m.scratch[:0]
	for i, pos := range m.source {
		out, w := p.Displace(pos, easing.Vertex{
			EaseOffset:    a.EaseOffset[i],
			EaseMagnitude: a.EaseMagnitude[i],
			Crazy:         a.Crazy[i],
		})
		m.scratch = append(m.scratch, out.X, out.Y, out.Z)
		m.weight[i] = w
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.positions)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(m.scratch)*4, gl.Ptr(m.scratch))
	gl.BindBuffer(gl.ARRAY_BUFFER, m.weights)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(m.weight)*4, gl.Ptr(m.weight))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	m.dirty = true
}

// restore uploads the undisplaced positions for the GPU path.
func (m *gpuMesh) restore() {
	src := flatten(m.source)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.positions)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(src)*4, gl.Ptr(src))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	m.dirty = false
}

func (m *gpuMesh) delete() {
	buffers := []uint32{m.positions, m.normals, m.offsets, m.mags, m.crazy, m.weights, m.ebo}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	gl.DeleteVertexArrays(1, &m.vao)
}

func vertexBuffer(loc uint32, size int32, data []float32, usage uint32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), usage)
	}
	gl.VertexAttribPointerWithOffset(loc, size, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(loc)
	return vbo
}

func flatten(vs []math.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}

// Close releases every GL object.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, m := range r.meshes {
		m.delete()
	}
	r.meshes = nil
	if r.program != nil {
		r.program.Delete()
	}
	if r.particleVAO != 0 {
		gl.DeleteBuffers(1, &r.particleVBO)
		gl.DeleteVertexArrays(1, &r.particleVAO)
	}
	r.particles.Delete()
	r.fallback.Delete()
}
