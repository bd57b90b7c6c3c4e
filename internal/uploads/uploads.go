// Package uploads checks files before they are stored.
package uploads

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Policy is the upload limits read from configuration.
type Policy struct {
	MaxSize      int64    // bytes
	AllowedTypes []string // MIME types
}

// FileTooLargeError reports a file above Policy.MaxSize.
type FileTooLargeError struct {
	Size int64
	Max  int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("Le fichier est trop volumineux (%s, maximum %s)", humanSize(e.Size), humanSize(e.Max))
}

// FileTypeError reports a MIME type outside Policy.AllowedTypes.
type FileTypeError struct {
	MimeType string
}

func (e *FileTypeError) Error() string {
	return fmt.Sprintf("Type de fichier non autorisé : %s", e.MimeType)
}

// UploadFailedError wraps a storage failure that happened after the checks passed.
type UploadFailedError struct {
	Name string
	Err  error
}

func (e *UploadFailedError) Error() string {
	return fmt.Sprintf("Échec du téléversement de %s", e.Name)
}

func (e *UploadFailedError) Unwrap() error {
	return e.Err
}

// Detect sniffs the MIME type of a file from its leading bytes, ignoring parameters.
func Detect(head []byte) string {
	mt := mimetype.Detect(head).String()
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return mt
}

// Check validates size and type before any write. head is the beginning of the
// file content and is used to sniff the real type.
func (p Policy) Check(size int64, head []byte) (string, error) {
	if p.MaxSize > 0 && size > p.MaxSize {
		return "", &FileTooLargeError{Size: size, Max: p.MaxSize}
	}

	detected := mimetype.Detect(head)
	mt := Detect(head)
	if len(p.AllowedTypes) == 0 {
		return mt, nil
	}
	for _, allowed := range p.AllowedTypes {
		if detected.Is(allowed) {
			return mt, nil
		}
	}
	return "", &FileTypeError{MimeType: mt}
}

func humanSize(n int64) string {
	const unit = 1024
	switch {
	case n >= unit*unit:
		return fmt.Sprintf("%.1f Mo", float64(n)/(unit*unit))
	case n >= unit:
		return fmt.Sprintf("%.1f Ko", float64(n)/unit)
	default:
		return fmt.Sprintf("%d o", n)
	}
}
