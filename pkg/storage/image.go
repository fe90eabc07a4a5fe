package storage

import (
	"errors"

	"github.com/gabriel-vasile/mimetype"
)

var ErrUnsupportedImage = errors.New("unsupported image type")

var allowedImages = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// DetectImage sniffs the content type from the leading bytes rather than
// trusting the client's header.
func DetectImage(data []byte) (contentType, ext string, err error) {
	mtype := mimetype.Detect(data)

	for mt := mtype; mt != nil; mt = mt.Parent() {
		if ext, ok := allowedImages[mt.String()]; ok {
			return mt.String(), ext, nil
		}
	}

	return "", "", ErrUnsupportedImage
}
