package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/driftglass/tablescape/internal/logger"
)

// Mesh is shape geometry resident on the GPU.
type Mesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	spans []Span
}

// Upload copies geometry into GPU buffers and records the attribute
// layout in a vertex array object.
func Upload(g Geometry) *Mesh {
	m := &Mesh{spans: g.Spans}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Verts)*4, unsafe.Pointer(&g.Verts[0]), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

// Draw renders the selected parts of the shape. A zero mask draws all
// of them.
func (m *Mesh) Draw(parts Part) {
	gl.BindVertexArray(m.vao)
	for _, s := range spansFor(m.spans, parts) {
		gl.DrawElementsWithOffset(gl.TRIANGLES, s.Count, gl.UNSIGNED_INT, uintptr(s.Start*4))
	}
	gl.BindVertexArray(0)
}

func spansFor(spans []Span, parts Part) []Span {
	if parts == 0 {
		parts = PartAll
	}
	var out []Span
	for _, s := range spans {
		if s.Part&parts != 0 {
			out = append(out, s)
		}
	}
	return out
}

// Close releases the GPU buffers.
func (m *Mesh) Close() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}

// Library uploads shapes on demand and keeps them for reuse across
// frames.
type Library struct {
	meshes map[Kind]*Mesh
}

func NewLibrary() *Library {
	return &Library{meshes: make(map[Kind]*Mesh)}
}

// Load uploads the given kinds ahead of the first frame.
func (l *Library) Load(kinds ...Kind) {
	for _, k := range kinds {
		l.Mesh(k)
	}
}

// Mesh returns the GPU mesh for a kind, uploading it on first use.
func (l *Library) Mesh(k Kind) *Mesh {
	if m, ok := l.meshes[k]; ok {
		return m
	}
	g := Generate(k)
	m := Upload(g)
	l.meshes[k] = m
	logger.Debug("mesh uploaded",
		zap.Stringer("kind", k),
		zap.Int("vertices", len(g.Verts)/vertexStride),
		zap.Int("indices", len(g.Indices)),
	)
	return m
}

// Close releases every uploaded mesh.
func (l *Library) Close() {
	for _, m := range l.meshes {
		m.Close()
	}
	l.meshes = make(map[Kind]*Mesh)
}
