// meshgen generates cube, wire cube and terrain meshes as OBJ files.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/meshgen/internal/config"
	"github.com/Faultbox/meshgen/internal/logger"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	command := args[0]
	switch command {
	case "cube":
		err = cmdCube(cfg)
	case "wirecube", "wire":
		err = cmdWireCube(cfg)
	case "terrain":
		err = cmdTerrain(cfg)
	case "heightmap":
		err = cmdHeightmap(cfg)
	case "info":
		err = cmdInfo(args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshgen - procedural mesh generator

Usage:
  meshgen [flags] <command> [args]

Commands:
  cube               Write cube.obj
  wirecube           Write wirecube.obj
  terrain            Write terrain.obj
  heightmap          Write heightmap.bmp preview of the terrain heights
  info <file.obj>    Show vertex, triangle and bounds info for an OBJ file

Flags:
  -config <path>     Config file (default ./meshgen.yaml or user config dir)
  -out <dir>         Output directory
  -seed <n>          Terrain noise seed
  -verts <n>         Terrain vertices per side
  -size <n>          Terrain world size per side
  -flat              Flat terrain without noise
  -width, -height, -depth <n>, -thickness <n>
                     Cube dimensions and wire thickness
  -debug             Debug logging

Examples:
  meshgen -seed 42 terrain
  meshgen -width 2 -height 1 -depth 3 -thickness 0.05 wirecube
  meshgen info terrain.obj`)
}

// outputPath joins name onto the configured output directory, creating it.
func outputPath(cfg *config.Config, name string) (string, error) {
	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	return filepath.Join(cfg.Output.Dir, name), nil
}
