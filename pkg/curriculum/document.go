package curriculum

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	pdf "github.com/ledongthuc/pdf"
)

var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf, docx and txt are allowed")

var (
	reTags     = regexp.MustCompile(`<[^>]+>`)
	reBlanks   = regexp.MustCompile(`[\t\r\f\v\p{Zs}]+`)
	reNewlines = regexp.MustCompile(`\s*\n\s*`)
)

// Document is the plain text of a study plan file.
type Document struct {
	Text  string
	Pages int
}

// ReadDocument extracts newline-delimited text from a study plan file.
// Supports: .pdf, .docx and .txt
func ReadDocument(filename string, data []byte) (Document, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return readPDF(data)
	case ".docx":
		txt, err := readDocx(data)
		if err != nil {
			return Document{}, err
		}
		return Document{Text: txt, Pages: 1}, nil
	case ".txt", "":
		if !utf8.Valid(data) {
			return Document{}, errors.New("text file is not valid UTF-8")
		}
		return Document{Text: normalizeWhitespace(string(data)), Pages: 1}, nil
	default:
		return Document{}, ErrUnsupportedFormat
	}
}

// Supported reports whether ReadDocument accepts the file extension.
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".txt":
		return true
	}
	return false
}

func readPDF(data []byte) (Document, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("open pdf: %w", err)
	}
	var buf strings.Builder
	pages := r.NumPage()
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			return Document{}, fmt.Errorf("read pdf page %d: %w", i, err)
		}
		for _, row := range rows {
			for _, word := range row.Content {
				buf.WriteString(word.S)
			}
			buf.WriteByte('\n')
		}
	}
	if strings.TrimSpace(buf.String()) == "" {
		// Some generators put no row structure; fall back to the flat stream.
		rs, err := r.GetPlainText()
		if err != nil {
			return Document{}, fmt.Errorf("read pdf text: %w", err)
		}
		var flat bytes.Buffer
		if _, err = io.Copy(&flat, rs); err != nil {
			return Document{}, err
		}
		return Document{Text: normalizeWhitespace(flat.String()), Pages: pages}, nil
	}
	return Document{Text: normalizeWhitespace(buf.String()), Pages: pages}, nil
}

func readDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		break
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Paragraphs and table rows become lines.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "</w:tr>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

func normalizeWhitespace(s string) string {
	s = reBlanks.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
