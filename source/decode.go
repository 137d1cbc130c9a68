package source

import (
	"bytes"
	"fmt"
	"image"

	// Codecs for embedded rasters. PDFs commonly embed JPEG (DCTDecode)
	// streams; scanned documents also carry TIFF and the occasional BMP.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DecodeImage decodes an encoded raster blob into pixel data. The format is
// sniffed from the blob itself.
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
