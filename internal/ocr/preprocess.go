package ocr

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// enhanceImage applies a grayscale/contrast/sharpen pass that noticeably
// improves tesseract output on phone photos of bills. Returns the enhanced
// temp file and a cleanup func.
func enhanceImage(path string) (string, func(), error) {
	src, err := imaging.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("open image: %w", err)
	}

	img := imaging.Grayscale(src)
	img = imaging.AdjustContrast(img, 30)
	img = imaging.Sharpen(img, 1.5)
	img = imaging.AdjustGamma(img, 1.2)

	tmpDir, err := os.MkdirTemp("", "fx-pre-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	out := filepath.Join(tmpDir, "enhanced.png")
	if err := imaging.Save(img, out); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("save enhanced image: %w", err)
	}
	return out, cleanup, nil
}
