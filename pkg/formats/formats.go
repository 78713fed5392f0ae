// Package formats reads and writes interchange files for generated geometry.
package formats

// Note: Wavefront OBJ is implemented in obj.go
// Note: heightmap previews are implemented in heightmap.go
