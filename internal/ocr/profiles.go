package ocr

import "fmt"

// Profile names the tesseract configuration for one recognition pass.
type Profile string

const (
	// ProfileStandard: automatic full-page segmentation, plain text output.
	ProfileStandard Profile = "standard"
	// ProfileTable: single-block segmentation, restricted character
	// whitelist, TSV output with word bounding boxes.
	ProfileTable Profile = "table"
)

// tableWhitelist restricts the table pass to Turkish alphanumerics,
// punctuation and currency symbols, which keeps tesseract from hallucinating
// exotic glyphs inside dense tabular regions.
const tableWhitelist = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" +
	"ÇĞİÖŞÜçğıöşü.,:;/-()₺ "

// args builds the tesseract invocation for a profile.
// tesseract <file> stdout -l <lang> [--tessdata-dir ...] [profile flags]
func (p Profile) args(cfg Config, path string) []string {
	a := []string{path, "stdout", "-l", cfg.Lang}
	if cfg.TessdataDir != "" {
		a = append(a, "--tessdata-dir", cfg.TessdataDir)
	}
	switch p {
	case ProfileTable:
		a = append(a,
			"--psm", "6",
			"-c", fmt.Sprintf("tessedit_char_whitelist=%s", tableWhitelist),
			"tsv",
		)
	default:
		a = append(a, "--psm", "3")
	}
	return a
}
