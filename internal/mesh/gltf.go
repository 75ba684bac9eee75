package mesh

import (
	"context"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/meshease/pkg/math"
)

// Source loads raw geometry by path.
type Source interface {
	Load(ctx context.Context, path string) (Geometry, error)
}

// GLTFSource reads .gltf and .glb files. Every primitive of every mesh is
// concatenated into a single geometry.
type GLTFSource struct{}

// Load decodes the document at path.
func (GLTFSource) Load(ctx context.Context, path string) (Geometry, error) {
	if err := ctx.Err(); err != nil {
		return Geometry{}, err
	}
	doc, err := gltf.Open(path)
	if err != nil {
		return Geometry{}, fmt.Errorf("open gltf %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return Geometry{}, err
	}

	g, err := FromDocument(doc)
	if err != nil {
		return Geometry{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// FromDocument extracts the geometry of an already decoded document.
func FromDocument(doc *gltf.Document) (Geometry, error) {
	var g Geometry
	for mi, m := range doc.Meshes {
		for pi, prim := range m.Primitives {
			if err := appendPrimitive(&g, doc, prim); err != nil {
				return Geometry{}, fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err)
			}
		}
	}
	if len(g.Positions) == 0 {
		return Geometry{}, ErrNoPositions
	}
	return g, nil
}

func appendPrimitive(g *Geometry, doc *gltf.Document, prim *gltf.Primitive) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return ErrNoPositions
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	var normals [][3]float32
	if nIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[nIdx], nil)
		if err != nil {
			return fmt.Errorf("read normals: %w", err)
		}
	}

	base := uint32(len(g.Positions))
	for i, p := range positions {
		g.Positions = append(g.Positions, math.Vec3{X: p[0], Y: p[1], Z: p[2]})
		n := math.Vec3{Y: 1}
		if i < len(normals) {
			n = math.Vec3{X: normals[i][0], Y: normals[i][1], Z: normals[i][2]}
		}
		g.Normals = append(g.Normals, n)
	}

	if prim.Indices != nil {
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
		for _, idx := range indices {
			g.Indices = append(g.Indices, base+idx)
		}
	} else {
		for i := range positions {
			g.Indices = append(g.Indices, base+uint32(i))
		}
	}
	return nil
}
