package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// stubRunner answers tesseract invocations from canned output, keyed on
// whether the table pass (tsv config) was requested.
type stubRunner struct {
	standardOut string
	tableOut    string
	failOn      Profile
	calls       [][]string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	isTable := slices.Contains(args, "tsv")
	if s.failOn == ProfileTable && isTable || s.failOn == ProfileStandard && !isTable {
		return nil, []byte("boom"), errors.New("exit status 1")
	}
	if isTable {
		return []byte(s.tableOut), nil, nil
	}
	return []byte(s.standardOut), nil, nil
}

func writeTempImage(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func tsvWordRow(text string, left, top, width, height int) string {
	return fmt.Sprintf("5\t1\t1\t1\t1\t1\t%d\t%d\t%d\t%d\t95\t%s", left, top, width, height, text)
}

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext"

func TestRecognizeMergesBothPasses(t *testing.T) {
	path := writeTempImage(t, "bill.png", "not really a png")
	stub := &stubRunner{
		standardOut: "Fatura No: 123456789\nTutar: 420,75 TL",
		tableOut: strings.Join([]string{
			tsvHeader,
			tsvWordRow("Tutar", 10, 10, 50, 20),
			tsvWordRow("420,75", 200, 10, 60, 20),
		}, "\n"),
	}
	e := NewEngine(Config{}, nil)
	e.runner = stub

	res, err := e.Recognize(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.FullText, "Fatura No") {
		t.Errorf("full text not from standard pass: %q", res.FullText)
	}
	if len(res.Words) != 2 || res.Words[0].Text != "Tutar" {
		t.Errorf("words not from table pass: %+v", res.Words)
	}
	if len(stub.calls) != 2 {
		t.Fatalf("tesseract runs = %d, want exactly 2", len(stub.calls))
	}
}

func TestRecognizeMissingFile(t *testing.T) {
	e := NewEngine(Config{}, nil)
	e.runner = &stubRunner{}
	_, err := e.Recognize(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, ErrInput) {
		t.Fatalf("err = %v, want ErrInput", err)
	}
}

func TestRecognizeEmptyFile(t *testing.T) {
	path := writeTempImage(t, "empty.png", "")
	e := NewEngine(Config{}, nil)
	stub := &stubRunner{}
	e.runner = stub
	_, err := e.Recognize(context.Background(), path)
	if !errors.Is(err, ErrInput) {
		t.Fatalf("err = %v, want ErrInput", err)
	}
	if len(stub.calls) != 0 {
		t.Error("tesseract must not run on invalid input")
	}
}

func TestRecognizePassFailureAborts(t *testing.T) {
	path := writeTempImage(t, "bill.png", "x")
	for _, failOn := range []Profile{ProfileStandard, ProfileTable} {
		e := NewEngine(Config{}, nil)
		e.runner = &stubRunner{failOn: failOn, standardOut: "text", tableOut: tsvHeader}
		_, err := e.Recognize(context.Background(), path)
		if !errors.Is(err, ErrRecognition) {
			t.Errorf("fail on %s pass: err = %v, want ErrRecognition", failOn, err)
		}
	}
}

func TestRecognizePDFWithoutRasterizerOutput(t *testing.T) {
	path := writeTempImage(t, "bill.pdf", "%PDF-1.4")
	e := NewEngine(Config{}, nil)
	e.runner = &stubRunner{}
	_, err := e.Recognize(context.Background(), path)
	if !errors.Is(err, ErrRecognition) {
		t.Fatalf("err = %v, want ErrRecognition when pdftoppm yields no pages", err)
	}
}

func TestProfileArgs(t *testing.T) {
	cfg := Config{Lang: "tur", TessdataDir: "/opt/tessdata"}

	std := ProfileStandard.args(cfg, "in.png")
	if std[0] != "in.png" || std[1] != "stdout" {
		t.Errorf("standard args = %v", std)
	}
	if !hasFlag(std, "--psm", "3") {
		t.Errorf("standard pass must use auto segmentation: %v", std)
	}
	if slices.Contains(std, "tsv") {
		t.Errorf("standard pass must emit plain text: %v", std)
	}
	if !hasFlag(std, "--tessdata-dir", "/opt/tessdata") {
		t.Errorf("tessdata dir not passed: %v", std)
	}

	tbl := ProfileTable.args(cfg, "in.png")
	if !hasFlag(tbl, "--psm", "6") {
		t.Errorf("table pass must use single-block segmentation: %v", tbl)
	}
	if tbl[len(tbl)-1] != "tsv" {
		t.Errorf("table pass must request tsv output: %v", tbl)
	}
	whitelisted := false
	for _, a := range tbl {
		if strings.HasPrefix(a, "tessedit_char_whitelist=") {
			whitelisted = true
			for _, ch := range []string{"₺", "ğ", "İ", ","} {
				if !strings.Contains(a, ch) {
					t.Errorf("whitelist missing %q", ch)
				}
			}
		}
	}
	if !whitelisted {
		t.Errorf("table pass has no char whitelist: %v", tbl)
	}
}

func hasFlag(args []string, flag, value string) bool {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag && args[i+1] == value {
			return true
		}
	}
	return false
}

func TestParseTSVWords(t *testing.T) {
	tsv := strings.Join([]string{
		tsvHeader,
		"1\t1\t0\t0\t0\t0\t0\t0\t600\t800\t-1\t",             // page level
		tsvWordRow("Fatura", 10, 10, 60, 20),
		"5\t1\t1\t1\t1\t2\t80\t10\t40\t20\t-1\tghost",        // rejected conf
		"5\t1\t1\t1\t1\t3\t130\t10\t40\t20\t90\t   ",         // blank text
		tsvWordRow("123456", 180, 10, 70, 20),
		"short\trow",
		"",
	}, "\n")

	words := ParseTSVWords(tsv)
	if len(words) != 2 {
		t.Fatalf("words = %d, want 2: %+v", len(words), words)
	}
	if words[0].Text != "Fatura" || words[1].Text != "123456" {
		t.Errorf("texts = %q, %q", words[0].Text, words[1].Text)
	}
	box := words[1].Box
	if box.X1 != 180 || box.Y1 != 10 || box.X2 != 250 || box.Y2 != 30 {
		t.Errorf("box = %+v, want left+width/top+height edges", box)
	}
}

func TestParseTSVWordsEmpty(t *testing.T) {
	if words := ParseTSVWords(""); len(words) != 0 {
		t.Errorf("empty tsv produced words: %+v", words)
	}
	if words := ParseTSVWords(tsvHeader); len(words) != 0 {
		t.Errorf("header-only tsv produced words: %+v", words)
	}
}
