package ocr

import (
	"strconv"
	"strings"

	"github.com/enerjitakip/fatura-extract/internal/extraction"
)

// tesseract TSV columns:
// level page block par line word left top width height conf text
const (
	tsvColLevel  = 0
	tsvColLeft   = 6
	tsvColTop    = 7
	tsvColWidth  = 8
	tsvColHeight = 9
	tsvColConf   = 10
	tsvColText   = 11
	tsvNumCols   = 12

	tsvWordLevel = 5
)

// ParseTSVWords converts tesseract's TSV markup into the WordElement stream
// the clustering code consumes. This is the only place the concrete markup
// syntax is known; swapping OCR engines replaces this adapter, not the
// table-reconstruction logic. Rows that are not word-level, carry no text,
// or were rejected by the engine (conf -1) are skipped.
func ParseTSVWords(tsv string) []extraction.WordElement {
	var words []extraction.WordElement
	for i, line := range strings.Split(tsv, "\n") {
		if i == 0 || line == "" { // skip header
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < tsvNumCols {
			continue
		}
		if lv, err := strconv.Atoi(cols[tsvColLevel]); err != nil || lv != tsvWordLevel {
			continue
		}
		if cols[tsvColConf] == "-1" {
			continue
		}
		text := strings.TrimSpace(cols[tsvColText])
		if text == "" {
			continue
		}
		left, err1 := strconv.Atoi(cols[tsvColLeft])
		top, err2 := strconv.Atoi(cols[tsvColTop])
		width, err3 := strconv.Atoi(cols[tsvColWidth])
		height, err4 := strconv.Atoi(cols[tsvColHeight])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		words = append(words, extraction.WordElement{
			Text: text,
			Box: extraction.BoundingBox{
				X1: left,
				Y1: top,
				X2: left + width,
				Y2: top + height,
			},
		})
	}
	return words
}
