package tools

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

var ErrUnsupportedImage = errors.New("unsupported image")

type ImageType string

const (
	ImageTypeJPEG    ImageType = "jpeg"
	ImageTypePNG     ImageType = "png"
	ImageTypeGIF     ImageType = "gif"
	ImageTypeBMP     ImageType = "bmp"
	ImageTypeWEBP    ImageType = "webp"
	ImageTypeUnknown ImageType = "unknown"
)

func (t ImageType) String() string {
	return string(t)
}

func DetectImageType(b []byte) ImageType {
	contentType := http.DetectContentType(b)
	switch {
	case contentType == "image/jpeg":
		return ImageTypeJPEG
	case contentType == "image/png":
		return ImageTypePNG
	case contentType == "image/gif":
		return ImageTypeGIF
	case contentType == "image/bmp":
		return ImageTypeBMP
	case contentType == "image/webp":
		return ImageTypeWEBP
	case strings.HasPrefix(contentType, "image/"):
		return ImageType(strings.TrimPrefix(contentType, "image/"))
	default:
		return ImageTypeUnknown
	}
}

// ConvertToJPEG decodes srcData, shrinks it to fit maxSide x maxSide when
// maxSide > 0, and re-encodes it as an opaque JPEG.
func ConvertToJPEG(srcData []byte, quality int, maxSide int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(srcData), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if maxSide > 0 {
		b := img.Bounds()
		if b.Dx() > maxSide || b.Dy() > maxSide {
			img = imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)
		}
	}
	ret := new(bytes.Buffer)
	err = imaging.Encode(ret, flatten(img), imaging.JPEG, imaging.JPEGQuality(quality))
	if err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return ret.Bytes(), nil
}

// flatten drops transparency by drawing img over a white background.
func flatten(img image.Image) image.Image {
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), image.White.C)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}
