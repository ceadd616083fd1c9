// Command objc compiles one B3D or CSV object, prints a mesh summary and
// its diagnostics, and can render a WebP preview.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"bve-compiler/internal/config"
	"bve-compiler/internal/dump"
	"bve-compiler/internal/log"
	"bve-compiler/internal/mathutil"
	"bve-compiler/internal/object"
	"bve-compiler/internal/raster"
	"bve-compiler/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to a YAML config file")
	preview := flag.String("preview", "", "Write a WebP preview to this path")
	size := flag.Int("size", 0, "Preview size in pixels (default: 512)")
	checkTextures := flag.Bool("check-textures", false, "Load every referenced texture and report failures")
	textureDir := flag.String("textures", "", "Directory to search for textures missing next to the object")
	dumpPath := flag.String("dump", "", "Write the compiled object as a JSON dump to this path")
	yaw := flag.Float64("yaw", 0, "Preview yaw in degrees")
	pitch := flag.Float64("pitch", 0, "Preview pitch in degrees")
	roll := flag.Float64("roll", 0, "Preview roll in degrees")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: objc [flags] object.b3d|object.csv\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{Size: *size})
	log.Init(cfg.Log)

	obj, errs, err := object.Compile(path, object.FileTypeFor(path), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Meshes: %d, Textures: %d\n", len(obj.Meshes), len(obj.Textures))
	for i := range obj.Meshes {
		m := &obj.Meshes[i]
		lo, hi := bounds(m)
		fmt.Printf("  Mesh[%d]: %s\n", i, m.Summary())
		fmt.Printf("    BBox: X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
	}

	var index *texture.Index
	if *textureDir != "" {
		if index, err = texture.BuildIndex(*textureDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: texture index: %v\n", err)
		} else {
			fmt.Printf("Textures indexed: %d\n", index.Len())
		}
	}
	if *checkTextures {
		if bad := texture.Check(obj.Textures, index, errs, path); bad == 0 {
			fmt.Printf("Textures OK: %d\n", len(obj.Textures))
		}
	}

	if errs.Len() > 0 {
		fmt.Printf("\nDiagnostics (%d):\n", errs.Len())
		errs.Print(os.Stdout)
	}

	if *dumpPath != "" {
		if err := dump.Write(*dumpPath, obj, cfg.Output.Compress); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Dump: %s\n", *dumpPath)
	}

	if *preview != "" {
		bg, err := cfg.BackgroundColor()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts := raster.DefaultOptions()
		opts.Size = cfg.Preview.Size
		opts.Supersample = cfg.Preview.Supersample
		opts.Background = bg
		opts.Turn(*yaw, *pitch, *roll)
		img := raster.RenderObject(obj, texture.NewCache(index), opts)
		if err := raster.WriteWebP(*preview, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		abs, _ := filepath.Abs(*preview)
		fmt.Printf("Preview: %s\n", abs)
	}

	if cfg.Compiler.Strict && errs.Len() > 0 {
		os.Exit(1)
	}
}

func bounds(m *object.Mesh) (lo, hi mathutil.Vec3) {
	for i, v := range m.Vertices {
		for k := range 3 {
			if i == 0 || v.Position[k] < lo[k] {
				lo[k] = v.Position[k]
			}
			if i == 0 || v.Position[k] > hi[k] {
				hi[k] = v.Position[k]
			}
		}
	}
	return lo, hi
}
