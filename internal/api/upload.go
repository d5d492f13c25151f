package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// ProgressFunc receives upload progress as bytes sent out of total. It is
// called from the request goroutine; implementations must be fast and
// non-blocking.
type ProgressFunc func(sent, total int64)

// uploadMultipart sends filePath as a multipart "file" part plus optional
// form fields, reporting progress while the body streams out. The whole body
// is buffered first so a transient failure can be retried from the start.
func (c *Client) uploadMultipart(ctx context.Context, path, filePath string, fields map[string]string, progress ProgressFunc, dest any) error {
	body, contentType, err := buildMultipart(filePath, fields)
	if err != nil {
		return err
	}
	total := int64(len(body))

	return c.do(ctx, request{
		method:      "POST",
		rel:         relPath(path),
		contentType: contentType,
		body: func() (io.Reader, error) {
			return &progressReader{
				r:        bytes.NewReader(body),
				total:    total,
				progress: progress,
			}, nil
		},
		dest: dest,
	})
}

// buildMultipart assembles a multipart form with the file contents and any
// extra fields, returning the encoded body and its content type.
func buildMultipart(filePath string, fields map[string]string) ([]byte, string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("open upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("read upload: %w", err)
	}
	for key, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize form: %w", err)
	}
	return buf.Bytes(), writer.FormDataContentType(), nil
}

// progressReader counts bytes as the HTTP transport consumes the body.
type progressReader struct {
	r        io.Reader
	total    int64
	sent     int64
	progress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		if p.progress != nil {
			p.progress(p.sent, p.total)
		}
	}
	return n, err
}
