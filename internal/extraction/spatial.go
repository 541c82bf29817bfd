package extraction

import (
	"sort"
	"strings"
)

// clusterTolerance is the max distance in pixels between a word's center and
// a cluster's mean center for the word to join the cluster.
const clusterTolerance = 10

// cluster is a 1-D proximity group of word indices along one axis.
type cluster struct {
	indices []int
	sum     int
}

func (c *cluster) center() int { return c.sum / len(c.indices) }

func (c *cluster) add(i, pos int) {
	c.indices = append(c.indices, i)
	c.sum += pos
}

// clusterByCenter groups word indices whose centers (per axis) fall within
// clusterTolerance of a cluster mean. Input order does not matter; clusters
// come back sorted by center.
func clusterByCenter(words []WordElement, center func(WordElement) int) []*cluster {
	order := make([]int, len(words))
	for i := range words {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return center(words[order[a]]) < center(words[order[b]])
	})

	var clusters []*cluster
	for _, i := range order {
		pos := center(words[i])
		if n := len(clusters); n > 0 && abs(pos-clusters[n-1].center()) <= clusterTolerance {
			clusters[n-1].add(i, pos)
			continue
		}
		c := &cluster{}
		c.add(i, pos)
		clusters = append(clusters, c)
	}
	return clusters
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ReconstructTable clusters word bounding boxes into rows and columns and
// reads cell contents by rectangle containment. A table hypothesis needs at
// least 2 row clusters and 2 column clusters; otherwise ok is false and the
// caller should fall back to the text heuristic. Empty grid cells are
// omitted from the result.
func ReconstructTable(words []WordElement) (Table, bool) {
	usable := words[:0:0]
	for _, w := range words {
		if w.Text == "" || (w.Box.X2 <= w.Box.X1 && w.Box.Y2 <= w.Box.Y1) {
			continue
		}
		usable = append(usable, w)
	}

	rows := clusterByCenter(usable, func(w WordElement) int { return w.Box.CenterY() })
	cols := clusterByCenter(usable, func(w WordElement) int { return w.Box.CenterX() })
	if len(rows) < 2 || len(cols) < 2 {
		return Table{}, false
	}

	bounds := usable[0].Box
	for _, w := range usable[1:] {
		bounds = bounds.Union(w.Box)
	}

	// cell edges are midpoints between adjacent cluster centers, with the
	// table's outer bounds closing the first and last row/column
	rowEdges := edges(rows, bounds.Y1, bounds.Y2)
	colEdges := edges(cols, bounds.X1, bounds.X2)

	t := Table{RowCount: len(rows), ColCount: len(cols), Bounds: bounds}
	for r := 0; r < len(rows); r++ {
		for c := 0; c < len(cols); c++ {
			rect := BoundingBox{X1: colEdges[c], Y1: rowEdges[r], X2: colEdges[c+1], Y2: rowEdges[r+1]}
			content := cellContent(usable, rect)
			if content == "" {
				continue
			}
			t.Cells = append(t.Cells, TableCell{Row: r, Col: c, Box: rect, Content: content})
		}
	}
	return t, true
}

// edges converts n cluster centers into n+1 boundary offsets.
func edges(clusters []*cluster, lo, hi int) []int {
	out := make([]int, 0, len(clusters)+1)
	out = append(out, lo)
	for i := 1; i < len(clusters); i++ {
		out = append(out, (clusters[i-1].center()+clusters[i].center())/2)
	}
	return append(out, hi)
}

// cellContent concatenates (left to right) every word whose center falls
// inside rect.
func cellContent(words []WordElement, rect BoundingBox) string {
	var inside []WordElement
	for _, w := range words {
		cx, cy := w.Box.CenterX(), w.Box.CenterY()
		if cx >= rect.X1 && cx <= rect.X2 && cy >= rect.Y1 && cy <= rect.Y2 {
			inside = append(inside, w)
		}
	}
	sort.SliceStable(inside, func(a, b int) bool { return inside[a].Box.X1 < inside[b].Box.X1 })
	parts := make([]string, len(inside))
	for i, w := range inside {
		parts[i] = w.Text
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Text-fallback tuning: lines are bucketed by length in 5-char steps, and a
// character offset is a column boundary when at least 60% of the candidate
// rows have a space there. Boundaries within 3 chars of each other merge.
const (
	lengthBucketSize   = 5
	columnSpaceRatio   = 0.6
	boundaryMergeRange = 3
)

// FallbackTableRows recovers tabular rows from raw text when spatial data is
// unusable. The largest same-length bucket of lines is taken as the table
// body and split at shared space columns. Offsets are rune positions, not
// bytes; Turkish text is multi-byte.
func FallbackTableRows(text string) [][]string {
	var lines [][]rune
	for _, ln := range strings.Split(text, "\n") {
		if strings.TrimSpace(ln) != "" {
			lines = append(lines, []rune(ln))
		}
	}

	buckets := map[int][][]rune{}
	for _, ln := range lines {
		buckets[len(ln)/lengthBucketSize] = append(buckets[len(ln)/lengthBucketSize], ln)
	}
	var body [][]rune
	for _, b := range buckets {
		if len(b) > len(body) {
			body = b
		}
	}
	if len(body) < 2 {
		return nil
	}

	maxLen := 0
	for _, ln := range body {
		if len(ln) > maxLen {
			maxLen = len(ln)
		}
	}

	var boundaries []int
	for off := 0; off < maxLen; off++ {
		spaces := 0
		for _, ln := range body {
			if off < len(ln) && ln[off] == ' ' {
				spaces++
			}
		}
		if float64(spaces) >= columnSpaceRatio*float64(len(body)) {
			boundaries = append(boundaries, off)
		}
	}
	boundaries = mergeBoundaries(boundaries)
	if len(boundaries) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(body))
	for _, ln := range body {
		rows = append(rows, splitAtOffsets(ln, boundaries))
	}
	return rows
}

// mergeBoundaries collapses offsets within boundaryMergeRange of each other
// into their first representative.
func mergeBoundaries(offsets []int) []int {
	var out []int
	for _, off := range offsets {
		if n := len(out); n > 0 && off-out[n-1] <= boundaryMergeRange {
			continue
		}
		out = append(out, off)
	}
	return out
}

func splitAtOffsets(line []rune, offsets []int) []string {
	var cells []string
	prev := 0
	for _, off := range offsets {
		if off > len(line) {
			off = len(line)
		}
		if cell := strings.TrimSpace(string(line[prev:off])); cell != "" {
			cells = append(cells, cell)
		}
		prev = off
	}
	if cell := strings.TrimSpace(string(line[min(prev, len(line)):])); cell != "" {
		cells = append(cells, cell)
	}
	return cells
}
