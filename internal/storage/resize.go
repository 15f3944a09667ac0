package storage

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/nfnt/resize"
)

// MaxImageWidth caps uploaded product photos; anything wider is downscaled
// preserving aspect ratio before it leaves the dashboard.
const MaxImageWidth = 1600

// Downscale re-encodes JPEG and PNG images wider than MaxImageWidth. Other
// formats, and images already within bounds, pass through untouched.
func Downscale(r io.Reader, contentType string) (io.Reader, int64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, err
	}

	if contentType != "image/jpeg" && contentType != "image/png" {
		return bytes.NewReader(raw), int64(len(raw)), nil
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		// not decodable: ship the original bytes and let the server decide
		return bytes.NewReader(raw), int64(len(raw)), nil
	}

	if img.Bounds().Dx() <= MaxImageWidth {
		return bytes.NewReader(raw), int64(len(raw)), nil
	}

	scaled := resize.Resize(MaxImageWidth, 0, img, resize.Lanczos3)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, scaled)
	default:
		err = jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, 0, err
	}
	return bytes.NewReader(buf.Bytes()), int64(buf.Len()), nil
}
