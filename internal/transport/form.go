package transport

import (
	"bytes"
	"io"
	"mime/multipart"
)

// FormPayload is a fully encoded multipart body plus the boundary
// content-type that decodes it. Build one with FormBuilder.
type FormPayload struct {
	ContentType string
	Data        []byte
}

// FormBuilder accumulates multipart fields. The zero value is ready to use.
type FormBuilder struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

func (b *FormBuilder) init() {
	if b.writer == nil {
		b.writer = multipart.NewWriter(&b.buf)
	}
}

// Field appends a plain text field. Errors are sticky and reported by Build.
func (b *FormBuilder) Field(name, value string) *FormBuilder {
	b.init()
	if b.err == nil {
		b.err = b.writer.WriteField(name, value)
	}
	return b
}

// File appends a file part streamed from r.
func (b *FormBuilder) File(field, filename string, r io.Reader) *FormBuilder {
	b.init()
	if b.err != nil {
		return b
	}
	part, err := b.writer.CreateFormFile(field, filename)
	if err != nil {
		b.err = err
		return b
	}
	_, b.err = io.Copy(part, r)
	return b
}

// Build finalizes the boundary and returns the encoded payload.
func (b *FormBuilder) Build() (*FormPayload, error) {
	b.init()
	if b.err != nil {
		return nil, b.err
	}
	if err := b.writer.Close(); err != nil {
		return nil, err
	}
	return &FormPayload{
		ContentType: b.writer.FormDataContentType(),
		Data:        b.buf.Bytes(),
	}, nil
}
