// Package source turns inputs into the ordered records the evaluator consumes.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockTags end the current record when entered or left.
var blockTags = map[string]bool{
	"html": true, "body": true, "address": true, "article": true, "aside": true,
	"blockquote": true, "br": true, "dd": true, "details": true, "div": true,
	"dl": true, "dt": true, "fieldset": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "header": true, "hr": true, "li": true, "main": true,
	"nav": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "tbody": true, "td": true, "tfoot": true, "th": true,
	"thead": true, "tr": true, "ul": true,
}

// skipTags hold no visible text.
var skipTags = map[string]bool{
	"head": true, "script": true, "style": true, "noscript": true, "template": true,
}

// Demo returns the records of the word count tutorial.
func Demo() []string {
	return []string{
		"these are words",
		"those are words",
		"lots of words",
	}
}

// Lines reads one record per non-blank line.
func Lines(r io.Reader) ([]string, error) {
	var records []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			records = append(records, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}

	return records, nil
}

// Files reads the lines of every file, in the order given.
func Files(paths ...string) ([]string, error) {
	return readAll(paths, Lines)
}

// HTMLFiles reads the text blocks of every HTML file, in the order given.
func HTMLFiles(paths ...string) ([]string, error) {
	return readAll(paths, HTML)
}

// HTML splits the document text at block element boundaries, in document
// order. Text directly inside a block that also holds nested blocks becomes
// its own records around them, and text outside any listed block is kept.
func HTML(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	w := &blockWalker{}
	w.walk(doc.Selection)
	w.flush()

	return w.records, nil
}

type blockWalker struct {
	records []string
	buf     strings.Builder
}

func (w *blockWalker) walk(s *goquery.Selection) {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		name := goquery.NodeName(c)
		switch {
		case name == "#text":
			w.buf.WriteString(c.Text())
		case name == "#comment" || skipTags[name]:
		case blockTags[name]:
			w.flush()
			w.walk(c)
			w.flush()
		default:
			w.walk(c)
		}
	})
}

func (w *blockWalker) flush() {
	text := strings.Join(strings.Fields(w.buf.String()), " ")
	w.buf.Reset()
	if text != "" {
		w.records = append(w.records, text)
	}
}

func readAll(paths []string, read func(io.Reader) ([]string, error)) ([]string, error) {
	var records []string
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open %s: %w", path, err)
		}
		recs, err := read(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		records = append(records, recs...)
	}

	return records, nil
}
