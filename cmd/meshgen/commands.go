package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/meshgen/internal/config"
	"github.com/Faultbox/meshgen/internal/logger"
	"github.com/Faultbox/meshgen/pkg/formats"
	"github.com/Faultbox/meshgen/pkg/mesh"
	"github.com/Faultbox/meshgen/pkg/terrain"
)

func cmdCube(cfg *config.Config) error {
	done := logger.Timed("build cube")
	m, err := mesh.CreateCubeMeshChecked(cfg.CubeDimensions())
	if err != nil {
		return err
	}
	done(zap.Int("vertices", m.VertexCount()))

	return writeMesh(cfg, "cube.obj", m)
}

func cmdWireCube(cfg *config.Config) error {
	done := logger.Timed("build wire cube")
	m, err := mesh.CreateWireCubeMeshChecked(cfg.CubeDimensions(), cfg.Cube.WireThickness)
	if err != nil {
		return err
	}
	done(zap.Int("vertices", m.VertexCount()))

	return writeMesh(cfg, "wirecube.obj", m)
}

func cmdTerrain(cfg *config.Config) error {
	p := cfg.TerrainParams()
	log := logger.Named("terrain")
	log.Info("generating terrain",
		zap.Int("verts", p.Verts),
		zap.Float32("size", p.Size),
		zap.Bool("bumps", p.Bumps),
		zap.Int64("seed", p.Seed),
	)

	done := logger.Timed("build terrain")
	m, err := terrain.Build(p)
	if err != nil {
		return err
	}
	done(zap.Int("vertices", m.VertexCount()), zap.Int("triangles", m.TriangleCount()))

	b := m.Bounds()
	log.Debug("terrain bounds", zap.Float32("min_height", b.Min.Y()), zap.Float32("max_height", b.Max.Y()))

	return writeMesh(cfg, "terrain.obj", m)
}

func cmdHeightmap(cfg *config.Config) error {
	p := cfg.TerrainParams()

	done := logger.Timed("generate heights")
	hm, err := terrain.GenerateHeights(p)
	if err != nil {
		return err
	}
	lo, hi := hm.MinMax()
	done(zap.Float32("min", lo), zap.Float32("max", hi))

	path, err := outputPath(cfg, "heightmap.bmp")
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := formats.WriteHeightmapBMP(f, hm.Heights, hm.Verts, hm.Verts); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Info("wrote heightmap", zap.String("path", path))
	return f.Close()
}

func cmdInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: meshgen info <file.obj>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := formats.ParseOBJ(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	b := m.Bounds()
	fmt.Printf("File:      %s\n", args[0])
	fmt.Printf("Vertices:  %d\n", m.VertexCount())
	fmt.Printf("Triangles: %d\n", m.TriangleCount())
	fmt.Printf("Bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		b.Min.X(), b.Min.Y(), b.Min.Z(), b.Max.X(), b.Max.Y(), b.Max.Z())
	return nil
}

// writeMesh validates m and writes it as OBJ into the output directory.
func writeMesh(cfg *config.Config, name string, m *mesh.Mesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("generated invalid mesh: %w", err)
	}

	path, err := outputPath(cfg, name)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := formats.WriteOBJ(f, m); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Info("wrote mesh",
		zap.String("path", path),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
	)
	return f.Close()
}
