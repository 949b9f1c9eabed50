package imagehost

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/nfnt/resize"
	"go.uber.org/zap"
)

// maxWidth is the width images are downscaled to before hosting.
const maxWidth = 800

// Rehoster downloads a remote image, validates and downscales it, and
// stores it under the local images directory so recipes stop depending on
// the source site staying up. One Rehost call per selected candidate; a
// failure affects that candidate only.
type Rehoster struct {
	client *resty.Client
	dir    string
	log    *zap.Logger
}

// New creates a Rehoster writing into dir. Downloads are bounded by timeout.
func New(dir string, timeout time.Duration, log *zap.Logger) *Rehoster {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36")
	return &Rehoster{client: client, dir: dir, log: log}
}

// HashImageData calculates the SHA256 hash of the image data.
func HashImageData(imageData []byte) string {
	hash := sha256.Sum256(imageData)
	return hex.EncodeToString(hash[:])
}

// Rehost fetches rawURL, requires an image content type, downscales the
// image and writes it to disk. It returns the hosted URL path.
func (r *Rehoster) Rehost(ctx context.Context, rawURL string) (string, error) {
	resp, err := r.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("failed to download image: status %d", resp.StatusCode())
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return "", fmt.Errorf("not an image: content type %q", ct)
	}

	data := resp.Body()
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	img = resize.Resize(maxWidth, 0, img, resize.Lanczos3)

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create images directory: %w", err)
	}

	ext := ".jpg"
	if format == "png" {
		ext = ".png"
	}
	name := HashImageData(data) + ext
	out, err := os.Create(filepath.Join(r.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer out.Close()

	switch ext {
	case ".png":
		err = png.Encode(out, img)
	default:
		err = jpeg.Encode(out, img, nil)
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	r.log.Debug("rehosted image", zap.String("source", rawURL), zap.String("file", name))
	return "/images/" + name, nil
}
