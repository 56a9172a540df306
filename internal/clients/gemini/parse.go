package gemini

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractJSON strips markdown code fences and any surrounding prose from a
// model response, returning the first JSON object or array found. Models
// asked for raw JSON still occasionally wrap it.
func extractJSON(text string) string {
	s := strings.TrimSpace(text)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	objStart := strings.IndexAny(s, "{[")
	if objStart < 0 {
		return s
	}

	var closer byte
	if s[objStart] == '{' {
		closer = '}'
	} else {
		closer = ']'
	}
	objEnd := strings.LastIndexByte(s, closer)
	if objEnd <= objStart {
		return s
	}
	return s[objStart : objEnd+1]
}

// documentText turns uploaded bytes into prompt text. PDFs are extracted
// locally; anything else is assumed to already be text.
func documentText(data []byte, mimeType string) (string, error) {
	if strings.Contains(mimeType, "pdf") {
		return extractPDFText(data)
	}
	return string(data), nil
}

// extractPDFText pulls the plain text out of a PDF document.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, textReader); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("PDF contains no extractable text")
	}
	return sb.String(), nil
}
