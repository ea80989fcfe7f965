package request

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
)

var (
	ErrNoImage         = errors.New("No image uploaded")
	ErrNoImageSelected = errors.New("No image selected")
)

type Analyze struct {
	Image    *multipart.FileHeader `form:"image"`                      // 上传的植物照片，优先使用
	ImageURL string                `form:"image_url" json:"image_url"` // 照片URL
}

func (a *Analyze) Valid(maxBytes int64) error {
	if a.Image == nil {
		if a.ImageURL == "" {
			return ErrNoImage
		}
		u, err := url.Parse(a.ImageURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid image_url: %s", a.ImageURL)
		}
		return nil
	}
	if a.Image.Filename == "" {
		return ErrNoImageSelected
	}
	if a.Image.Size > maxBytes {
		return fmt.Errorf("image larger than %d MB", maxBytes>>20)
	}
	return nil
}
