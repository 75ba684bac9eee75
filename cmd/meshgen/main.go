// meshgen writes the experiment's stand-in meshes and inspects glTF files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"

	"github.com/Faultbox/meshease/internal/mesh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		cmdGenerate(args)
	case "info":
		cmdInfo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshgen - mesh utility for meshease

Usage:
  meshgen <command> [options]

Commands:
  generate [-out dir] [-detail n]  Write monkey.glb and cylinder.glb
  info <file.glb>                  Show vertex count, bounds and normalization

Examples:
  meshgen generate -out assets/models
  meshgen info assets/models/cylinder.glb`)
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	out := fs.String("out", "assets/models", "Output directory")
	detail := fs.Int("detail", 32, "Segments around each mesh")
	fs.Parse(args)

	if *detail < 3 {
		fmt.Fprintln(os.Stderr, "Error: detail must be at least 3")
		os.Exit(1)
	}
	if err := os.MkdirAll(*out, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Both are authored in unit space; the preprocessor scales them.
	files := []struct {
		name string
		geom mesh.Geometry
	}{
		{"monkey.glb", mesh.UVSphere(1, *detail/2, *detail)},
		{"cylinder.glb", mesh.Cylinder(1, 8, *detail, *detail*2)},
	}

	for _, f := range files {
		path := filepath.Join(*out, f.name)
		if err := gltf.SaveBinary(mesh.Document(f.geom), path); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d vertices, %d triangles\n", path, f.geom.VertexCount(), len(f.geom.Indices)/3)
	}
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshgen info <file.glb>")
		os.Exit(1)
	}

	g, err := mesh.GLTFSource{}.Load(context.Background(), args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	box := g.BoundingBox()
	size := box.Size()
	fmt.Printf("File:      %s\n", args[0])
	fmt.Printf("Vertices:  %d\n", g.VertexCount())
	fmt.Printf("Triangles: %d\n", len(g.Indices)/3)
	fmt.Printf("Size:      %.3f x %.3f x %.3f\n", size.X, size.Y, size.Z)

	pre := mesh.NewPreprocessor(mesh.NewSeededRand(1), nil)
	for _, profile := range []mesh.Profile{mesh.MonkeyProfile, mesh.HelixProfile} {
		p, err := pre.Process(g.Clone(), profile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("maxY as %-7s %.3f\n", profile.Name+":", p.MaxY)
	}
}
