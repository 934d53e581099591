package dockerhub

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/google/uuid"
)

const boundaryPrefix = "----formdata-hubsync-"

// logoForm is an encoded multipart/form-data body for the media service.
type logoForm struct {
	Body        []byte
	ContentType string // "multipart/form-data; boundary=..."
	Boundary    string
}

// newLogoForm encodes the three parts the media service expects, in order:
// file (filename "file"), type=logo and dark=false.
func newLogoForm(data []byte, contentType string) (*logoForm, error) {
	boundary := newBoundary(data)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.SetBoundary(boundary); err != nil {
		return nil, fmt.Errorf("invalid multipart boundary: %w", err)
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="file"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err = part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write file part: %w", err)
	}

	if err = writer.WriteField("type", "logo"); err != nil {
		return nil, fmt.Errorf("failed to write type field: %w", err)
	}
	if err = writer.WriteField("dark", "false"); err != nil {
		return nil, fmt.Errorf("failed to write dark field: %w", err)
	}
	if err = writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}

	return &logoForm{
		Body:        body.Bytes(),
		ContentType: writer.FormDataContentType(),
		Boundary:    boundary,
	}, nil
}

// newBoundary returns a random boundary that does not occur in data.
func newBoundary(data []byte) string {
	for {
		boundary := boundaryPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
		if !bytes.Contains(data, []byte(boundary)) {
			return boundary
		}
	}
}
