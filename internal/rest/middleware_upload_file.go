package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// FileSaver persists an uploaded file under name.
type FileSaver interface {
	Save(ctx context.Context, name, contentType string, content io.Reader) error
}

// UploadFileMiddleware stores the multipart file sent in one form field under
// a fresh random name that keeps the extension of the file's media type, and
// records that name in [Request.Files].
type UploadFileMiddleware struct {
	storage   FileSaver
	fieldName string
	maxSize   int64
}

func NewUploadFileMiddleware(storage FileSaver, fieldName string, maxSize int64) *UploadFileMiddleware {
	return &UploadFileMiddleware{
		storage:   storage,
		fieldName: fieldName,
		maxSize:   maxSize,
	}
}

func (m *UploadFileMiddleware) Execute(w http.ResponseWriter, r *Request, next HandlerFunc) error {
	r.Request.Body = http.MaxBytesReader(w, r.Request.Body, m.maxSize)
	if err := r.ParseMultipartForm(m.maxSize); err != nil {
		return m.invalid(fmt.Sprintf("%s must be a multipart/form-data file not larger than %d bytes", m.fieldName, m.maxSize)).
			WithCause(err)
	}

	file, header, err := r.FormFile(m.fieldName)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return m.invalid(fmt.Sprintf("%s should not be empty", m.fieldName)).WithCause(err)
		}
		return fmt.Errorf("reading uploaded file: %w", err)
	}
	defer file.Close()

	contentType, ext, err := detectType(header.Header.Get("Content-Type"), file)
	if err != nil {
		return fmt.Errorf("detecting uploaded file type: %w", err)
	}

	name := uuid.NewString() + ext
	if err = m.storage.Save(r.Context(), name, contentType, file); err != nil {
		return fmt.Errorf("saving uploaded file %s: %w", name, err)
	}

	r.Files[m.fieldName] = name
	return next(w, r)
}

func (m *UploadFileMiddleware) invalid(message string) *HTTPError {
	return NewValidationError("Invalid file upload", "UploadFileMiddleware", ValidationErrorField{
		Property: m.fieldName,
		Messages: []string{message},
	})
}

// detectType prefers the declared media type and sniffs the content when the
// declared type is missing or unknown. file is rewound afterwards.
func detectType(declared string, file multipart.File) (string, string, error) {
	declared, _, _ = strings.Cut(declared, ";")
	declared = strings.TrimSpace(declared)
	if mt := mimetype.Lookup(declared); mt != nil && mt.Extension() != "" {
		return declared, mt.Extension(), nil
	}

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return "", "", err
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return "", "", err
	}

	return detected.String(), detected.Extension(), nil
}
