// Package mesh generates and draws the primitive shapes the tabletop
// scene is assembled from.
package mesh

import "github.com/chewxy/math32"

// floats per vertex: position x,y,z | normal x,y,z | texture u,v
const vertexStride = 8

// Part selects sections of a shape when drawing. Shapes without
// separate caps carry a single span tagged with every bit.
type Part uint8

const (
	PartBottom Part = 1 << iota
	PartSide
	PartTop

	PartAll = PartBottom | PartSide | PartTop
)

// Span is a contiguous index range covering one part of a shape.
type Span struct {
	Part  Part
	Start int32
	Count int32
}

// Geometry is CPU-side shape data ready for upload.
type Geometry struct {
	Verts   []float32
	Indices []uint32
	Spans   []Span
}

// Kind identifies one of the built-in shapes.
type Kind int

const (
	Plane Kind = iota
	Box
	Cylinder
	TaperedCylinder
	Sphere
	HalfSphere
	Torus
)

func (k Kind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	case TaperedCylinder:
		return "tapered cylinder"
	case Sphere:
		return "sphere"
	case HalfSphere:
		return "half sphere"
	case Torus:
		return "torus"
	}
	return "unknown"
}

// Generate builds the geometry for a shape kind. Shapes use unit
// dimensions; the scene sizes them through the model matrix.
func Generate(k Kind) Geometry {
	switch k {
	case Plane:
		return planeGeometry()
	case Box:
		return boxGeometry()
	case Cylinder:
		return cylinderGeometry(1, 1)
	case TaperedCylinder:
		return cylinderGeometry(1, 0.5)
	case Sphere:
		return sphereGeometry(18, math32.Pi)
	case HalfSphere:
		return sphereGeometry(9, math32.Pi/2)
	case Torus:
		return torusGeometry()
	}
	return Geometry{}
}

// planeGeometry builds a 2x2 quad in the XZ plane at y=0 facing +Y.
func planeGeometry() Geometry {
	verts := []float32{
		-1, 0, -1, 0, 1, 0, 0, 1,
		1, 0, -1, 0, 1, 0, 1, 1,
		1, 0, 1, 0, 1, 0, 1, 0,
		-1, 0, 1, 0, 1, 0, 0, 0,
	}
	indices := []uint32{0, 2, 1, 0, 3, 2}
	return Geometry{Verts: verts, Indices: indices, Spans: wholeSpan(indices)}
}

// boxGeometry builds a unit cube centered on the origin, four vertices
// per face so each face gets its own normal and texture coordinates.
func boxGeometry() Geometry {
	// normal, then the two in-plane axes chosen so u cross v = normal
	faces := [6][3][3]float32{
		{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
		{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
		{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
		{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
		{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
		{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	}
	corners := [4][3]float32{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var verts []float32
	var indices []uint32
	for _, f := range faces {
		n, u, v := f[0], f[1], f[2]
		base := uint32(len(verts) / vertexStride)
		for ci, c := range corners {
			verts = append(verts,
				(n[0]+c[0]*u[0]+c[1]*v[0])/2,
				(n[1]+c[0]*u[1]+c[1]*v[1])/2,
				(n[2]+c[0]*u[2]+c[1]*v[2])/2,
				n[0], n[1], n[2],
				uvs[ci][0], uvs[ci][1],
			)
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return Geometry{Verts: verts, Indices: indices, Spans: wholeSpan(indices)}
}

// cylinderGeometry builds a cylinder of height 1 standing on y=0 with
// the given end radii. The caps and the side each get their own span
// so they can be drawn independently.
func cylinderGeometry(bottomRadius, topRadius float32) Geometry {
	const segs = 36

	var g Geometry

	capSpan := func(part Part, y, radius float32, up bool) {
		base := uint32(len(g.Verts) / vertexStride)
		ny := float32(-1)
		if up {
			ny = 1
		}
		g.Verts = append(g.Verts, 0, y, 0, 0, ny, 0, 0.5, 0.5)
		for i := 0; i <= segs; i++ {
			theta := 2 * math32.Pi * float32(i) / segs
			c, s := math32.Cos(theta), math32.Sin(theta)
			g.Verts = append(g.Verts, radius*c, y, radius*s, 0, ny, 0, (c+1)/2, (s+1)/2)
		}
		start := int32(len(g.Indices))
		for i := uint32(0); i < segs; i++ {
			if up {
				g.Indices = append(g.Indices, base, base+2+i, base+1+i)
			} else {
				g.Indices = append(g.Indices, base, base+1+i, base+2+i)
			}
		}
		g.Spans = append(g.Spans, Span{Part: part, Start: start, Count: int32(len(g.Indices)) - start})
	}

	side := func() {
		base := uint32(len(g.Verts) / vertexStride)
		slope := bottomRadius - topRadius
		for i := 0; i <= segs; i++ {
			theta := 2 * math32.Pi * float32(i) / segs
			c, s := math32.Cos(theta), math32.Sin(theta)
			nx, ny, nz := normalize3(c, slope, s)
			u := float32(i) / segs
			g.Verts = append(g.Verts,
				bottomRadius*c, 0, bottomRadius*s, nx, ny, nz, u, 0,
				topRadius*c, 1, topRadius*s, nx, ny, nz, u, 1,
			)
		}
		start := int32(len(g.Indices))
		for i := uint32(0); i < segs; i++ {
			b0 := base + 2*i
			g.Indices = append(g.Indices, b0, b0+1, b0+3, b0, b0+3, b0+2)
		}
		g.Spans = append(g.Spans, Span{Part: PartSide, Start: start, Count: int32(len(g.Indices)) - start})
	}

	capSpan(PartBottom, 0, bottomRadius, false)
	side()
	capSpan(PartTop, 1, topRadius, true)
	return g
}

// sphereGeometry builds a unit sphere sector centered on the origin as
// a latitude band grid. elevLen is the arc from the +Y pole in radians,
// so Pi yields the full sphere and Pi/2 the upper dome.
func sphereGeometry(heightSegs int, elevLen float32) Geometry {
	const widthSegs = 36

	var verts []float32
	for j := 0; j <= heightSegs; j++ {
		elev := elevLen * float32(j) / float32(heightSegs)
		y := math32.Cos(elev)
		ringR := math32.Sin(elev)
		for i := 0; i <= widthSegs; i++ {
			theta := 2 * math32.Pi * float32(i) / widthSegs
			x := ringR * math32.Cos(theta)
			z := ringR * math32.Sin(theta)
			verts = append(verts, x, y, z, x, y, z,
				float32(i)/widthSegs, 1-float32(j)/float32(heightSegs))
		}
	}
	indices := gridIndices(widthSegs, heightSegs)
	return Geometry{Verts: verts, Indices: indices, Spans: wholeSpan(indices)}
}

// torusGeometry builds a ring of radius 1 with tube radius 0.2 lying
// in the XY plane, centered on the origin.
func torusGeometry() Geometry {
	const (
		ringRadius = 1
		tubeRadius = 0.2
		ringSegs   = 36
		tubeSegs   = 18
	)

	var verts []float32
	for j := 0; j <= tubeSegs; j++ {
		v := 2 * math32.Pi * float32(j) / tubeSegs
		for i := 0; i <= ringSegs; i++ {
			u := 2 * math32.Pi * float32(i) / ringSegs
			cx := ringRadius * math32.Cos(u)
			cy := ringRadius * math32.Sin(u)
			px := (ringRadius + tubeRadius*math32.Cos(v)) * math32.Cos(u)
			py := (ringRadius + tubeRadius*math32.Cos(v)) * math32.Sin(u)
			pz := tubeRadius * math32.Sin(v)
			// normal points from the ring centerline through the surface
			nx, ny, nz := normalize3(px-cx, py-cy, pz)
			verts = append(verts, px, py, pz, nx, ny, nz,
				float32(i)/ringSegs, float32(j)/tubeSegs)
		}
	}
	indices := gridIndices(ringSegs, tubeSegs)
	return Geometry{Verts: verts, Indices: indices, Spans: wholeSpan(indices)}
}

// gridIndices stitches a (cols+1) x (rows+1) vertex grid into quads,
// two triangles each.
func gridIndices(cols, rows int) []uint32 {
	indices := make([]uint32, 0, cols*rows*6)
	for j := 1; j <= rows; j++ {
		for i := 1; i <= cols; i++ {
			a := uint32((cols+1)*j + i - 1)
			b := uint32((cols+1)*(j-1) + i - 1)
			c := uint32((cols+1)*(j-1) + i)
			d := uint32((cols+1)*j + i)
			indices = append(indices, a, b, d, b, c, d)
		}
	}
	return indices
}

func wholeSpan(indices []uint32) []Span {
	return []Span{{Part: PartAll, Start: 0, Count: int32(len(indices))}}
}

func normalize3(x, y, z float32) (float32, float32, float32) {
	m := math32.Sqrt(x*x + y*y + z*z)
	if m == 0 {
		return 0, 0, 0
	}
	return x / m, y / m, z / m
}
