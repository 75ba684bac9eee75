package mesh

import (
	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/meshease/pkg/math"
)

// UVSphere builds a sphere centred on the origin.
func UVSphere(radius float32, rings, segments int) Geometry {
	var g Geometry
	for r := 0; r <= rings; r++ {
		phi := math32.Pi * float32(r) / float32(rings)
		for s := 0; s <= segments; s++ {
			theta := 2 * math32.Pi * float32(s) / float32(segments)
			n := math.Vec3{
				X: math32.Sin(phi) * math32.Cos(theta),
				Y: math32.Cos(phi),
				Z: math32.Sin(phi) * math32.Sin(theta),
			}
			g.Positions = append(g.Positions, n.Scale(radius))
			g.Normals = append(g.Normals, n)
		}
	}
	g.Indices = gridIndices(rings, segments)
	return g
}

// Cylinder builds an open cylinder centred on the origin along Y.
func Cylinder(radius, height float32, radial, rows int) Geometry {
	var g Geometry
	for r := 0; r <= rows; r++ {
		y := height*float32(r)/float32(rows) - height/2
		for s := 0; s <= radial; s++ {
			theta := 2 * math32.Pi * float32(s) / float32(radial)
			n := math.Vec3{X: math32.Cos(theta), Z: math32.Sin(theta)}
			g.Positions = append(g.Positions, math.Vec3{X: n.X * radius, Y: y, Z: n.Z * radius})
			g.Normals = append(g.Normals, n)
		}
	}
	g.Indices = gridIndices(rows, radial)
	return g
}

// gridIndices triangulates a (rows+1) x (cols+1) vertex grid.
func gridIndices(rows, cols int) []uint32 {
	stride := uint32(cols + 1)
	indices := make([]uint32, 0, rows*cols*6)
	for r := uint32(0); r < uint32(rows); r++ {
		for c := uint32(0); c < uint32(cols); c++ {
			a := r*stride + c
			b := a + stride
			indices = append(indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return indices
}

// Document encodes g as a single-primitive glTF document.
func Document(g Geometry) *gltf.Document {
	doc := gltf.NewDocument()

	positions := make([][3]float32, len(g.Positions))
	for i, p := range g.Positions {
		positions[i] = p.Array()
	}
	attrs := map[string]int{
		gltf.POSITION: modeler.WritePosition(doc, positions),
	}
	if len(g.Normals) == len(g.Positions) {
		normals := make([][3]float32, len(g.Normals))
		for i, n := range g.Normals {
			normals[i] = n.Array()
		}
		attrs[gltf.NORMAL] = modeler.WriteNormal(doc, normals)
	}

	prim := &gltf.Primitive{Attributes: attrs}
	if len(g.Indices) > 0 {
		prim.Indices = gltf.Index(modeler.WriteIndices(doc, g.Indices))
	}
	doc.Meshes = []*gltf.Mesh{{Name: "mesh", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: "mesh", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}
