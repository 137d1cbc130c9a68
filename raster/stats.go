package raster

import "image"

// stats holds per-image pixel measurements consumed by the rule table.
// Variance, mean and ink density come from a single pass over the RGB
// channel values; the edge ratio is computed lazily because most images
// are decided before that layer is reached.
type stats struct {
	pixels        int     // pixel count (width * height)
	variance      float64 // population variance over all channel values
	mean          float64 // mean over all channel values
	nonWhiteRatio float64 // fraction of channel values below nonWhiteCutoff

	// gray is the row-major intensity plane used for edge detection
	gray   []uint8
	width  int
	height int

	edgeComputed bool
	edge         float64
}

// computeStats measures an image in one pass. Alpha is ignored; pixels are
// treated as RGB the way the classifier's thresholds were calibrated.
func computeStats(img image.Image) *stats {
	s := &stats{}
	if img == nil {
		return s
	}
	b := img.Bounds()
	s.width = b.Dx()
	s.height = b.Dy()
	s.pixels = s.width * s.height
	if s.pixels == 0 {
		return s
	}

	s.gray = make([]uint8, s.pixels)

	var sum, sumSq float64
	nonWhite := 0

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			r := float64(r16 >> 8)
			g := float64(g16 >> 8)
			bb := float64(b16 >> 8)

			sum += r + g + bb
			sumSq += r*r + g*g + bb*bb
			if r < nonWhiteCutoff {
				nonWhite++
			}
			if g < nonWhiteCutoff {
				nonWhite++
			}
			if bb < nonWhiteCutoff {
				nonWhite++
			}

			s.gray[i] = uint8((uint32(r16>>8) + uint32(g16>>8) + uint32(b16>>8)) / 3)
			i++
		}
	}

	n := float64(s.pixels * 3)
	s.mean = sum / n
	s.variance = sumSq/n - s.mean*s.mean
	if s.variance < 0 {
		s.variance = 0 // float rounding on uniform images
	}
	s.nonWhiteRatio = float64(nonWhite) / n

	return s
}

// edgeRatio returns the fraction of interior pixels whose first-difference
// gradient magnitude exceeds edgeGradientCutoff. The gradient compares each
// pixel with its right and lower neighbors, so the last row and column are
// excluded from the sample. Known limitation: those border pixels never
// contribute edges; preserved because the thresholds were calibrated against
// this exact sampling.
func (s *stats) edgeRatio() float64 {
	if s.edgeComputed {
		return s.edge
	}
	s.edgeComputed = true

	w, h := s.width, s.height
	if w < 2 || h < 2 {
		s.edge = 0
		return s.edge
	}

	edgePixels := 0
	for y := 0; y < h-1; y++ {
		row := y * w
		next := row + w
		for x := 0; x < w-1; x++ {
			center := int(s.gray[row+x])
			dx := center - int(s.gray[row+x+1])
			if dx < 0 {
				dx = -dx
			}
			dy := center - int(s.gray[next+x])
			if dy < 0 {
				dy = -dy
			}
			mag := dx
			if dy > mag {
				mag = dy
			}
			if mag > edgeGradientCutoff {
				edgePixels++
			}
		}
	}

	s.edge = float64(edgePixels) / float64((w-1)*(h-1))
	return s.edge
}
