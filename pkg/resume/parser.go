package resume

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

	"github.com/artem13815/recruit/pkg/classifier"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain; charset=utf-8"
)

var (
	reTags   = regexp.MustCompile(`<[^>]+>`)
	reSpaces = regexp.MustCompile(`[ \t\r\f\v]+`)
	reBreaks = regexp.MustCompile(`\n+`)
)

// Format resolves the document format from the extension, then the mime type.
// Empty string means the format is not supported.
func Format(filename, mime string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt":
		return MimeText
	}
	switch {
	case strings.HasPrefix(mime, "application/pdf"):
		return MimePDF
	case strings.HasPrefix(mime, MimeDOCX):
		return MimeDOCX
	case strings.HasPrefix(mime, "text/plain"):
		return MimeText
	}
	return ""
}

// ExtractText returns the plain text of a PDF, DOCX or UTF-8 text document.
// It never fails: unreadable input yields classifier.UnreadableText.
func ExtractText(filename, mime string, data []byte) string {
	text, err := extract(Format(filename, mime), data)
	if err != nil {
		return classifier.UnreadableText + ": " + err.Error()
	}
	return text
}

func extract(format string, data []byte) (text string, err error) {
	// ledongthuc/pdf panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()
	switch format {
	case MimePDF:
		return extractTextFromPDF(data)
	case MimeDOCX:
		return extractTextFromDocx(data)
	case MimeText:
		if !utf8.Valid(data) {
			return "", errors.New("text is not valid UTF-8")
		}
		return normalizeWhitespace(string(data)), nil
	default:
		return "", errors.New("unsupported file format")
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
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
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	return normalizeWhitespace(reTags.ReplaceAllString(xml, " ")), nil
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = reBreaks.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
