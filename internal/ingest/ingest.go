// Package ingest turns uploaded resume files and job description sources
// into the raw text inputs consumed by the pipeline.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies the decode route for an uploaded resume file.
type Format string

// Supported resume file formats.
const (
	FormatPDF   Format = "pdf"
	FormatDOCX  Format = "docx"
	FormatImage Format = "image"
	FormatText  Format = "text"
)

// DetectFormat routes purely by filename extension, case-insensitively and
// independent of content. Anything unrecognized is treated as plain text.
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".png", ".jpg", ".jpeg":
		return FormatImage
	default:
		return FormatText
	}
}

// DecoderFunc extracts plain text from a raw file. Implementations (PDF
// readers, DOCX parsers, OCR engines) are external collaborators.
type DecoderFunc func(data []byte) (string, error)

// Decoders holds the optional decoding collaborators per format. A nil field
// means no decoder is available for that format.
type Decoders struct {
	PDF   DecoderFunc
	DOCX  DecoderFunc
	Image DecoderFunc
}

// DecodeResume decodes an uploaded resume into text, routed by filename
// extension. Plain text never fails; other formats require their decoder.
func (d Decoders) DecodeResume(data []byte, filename string) (string, error) {
	format := DetectFormat(filename)
	switch format {
	case FormatPDF:
		return d.decodeWith(d.PDF, format, data)
	case FormatDOCX:
		return d.decodeWith(d.DOCX, format, data)
	case FormatImage:
		return d.decodeWith(d.Image, format, data)
	default:
		// Treat as plain text, dropping invalid UTF-8.
		return strings.ToValidUTF8(string(data), ""), nil
	}
}

func (d Decoders) decodeWith(decode DecoderFunc, format Format, data []byte) (string, error) {
	if decode == nil {
		return "", fmt.Errorf("no %s decoder configured", format)
	}
	text, err := decode(data)
	if err != nil {
		return "", fmt.Errorf("%s decoding failed: %w", format, err)
	}
	return text, nil
}

// JDFromFile reads a job description from a plain text file.
func JDFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file: %w", err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
