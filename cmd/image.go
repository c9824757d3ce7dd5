package cmd

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/gabriel-vasile/mimetype"
)

const maxImageBytes = 5 << 20

var (
	errImageTooLarge = fmt.Errorf("%w: image must be 5 MB or smaller", domain.ErrInvalidInput)
	errNotAnImage    = fmt.Errorf("%w: file is not an image", domain.ErrInvalidInput)
)

// imageDataURL reads an image file and encodes it as a data URL for the
// product image field.
func imageDataURL(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if info.Size() > maxImageBytes {
		return "", errImageTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", errNotAnImage, mime.String())
	}

	mediaType, _, _ := strings.Cut(mime.String(), ";")
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
