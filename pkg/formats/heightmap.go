package formats

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"
)

var ErrHeightmapSize = errors.New("heightmap size does not match sample count")

// HeightmapImage renders row-major heights as 8-bit grayscale, stretching
// the lowest height to black and the highest to white. A flat grid is black.
func HeightmapImage(heights []float32, width, height int) (*image.Gray, error) {
	if width <= 0 || height <= 0 || len(heights) != width*height {
		return nil, fmt.Errorf("%w: %dx%d with %d samples", ErrHeightmapSize, width, height, len(heights))
	}

	lo, hi := heights[0], heights[0]
	for _, h := range heights[1:] {
		lo = min(lo, h)
		hi = max(hi, h)
	}
	span := hi - lo

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			var v uint8
			if span > 0 {
				v = uint8((heights[y*width+x] - lo) / span * 255)
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img, nil
}

// WriteHeightmapBMP encodes the grayscale preview of heights as BMP.
func WriteHeightmapBMP(w io.Writer, heights []float32, width, height int) error {
	img, err := HeightmapImage(heights, width, height)
	if err != nil {
		return err
	}
	return bmp.Encode(w, img)
}
