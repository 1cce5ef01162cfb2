// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/esteh-pos/pos-client/models"
	"github.com/go-resty/resty/v2"
)

// UploadFile is a local file ready to be attached to a multipart request.
type UploadFile struct {
	// Path is the file system path, without any file:// prefix.
	Path string
	// Name is the file name sent to the backend.
	Name string
	// ContentType is the MIME type sent with the part.
	ContentType string
}

// PrepareImageFile turns a picked image into an [UploadFile]. The name
// falls back to the last URI segment and the MIME type to one guessed from
// the extension (image/png for .png, image/jpeg otherwise). Nil yields nil.
func PrepareImageFile(asset *models.FileAsset) *UploadFile {
	if asset == nil || asset.URI == "" {
		return nil
	}

	name := asset.Name
	if name == "" {
		name = path.Base(asset.URI)
	}

	contentType := asset.Type
	if contentType == "" {
		switch strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")) {
		case "png":
			contentType = "image/png"
		default:
			contentType = "image/jpeg"
		}
	}

	return &UploadFile{
		Path:        strings.TrimPrefix(asset.URI, "file://"),
		Name:        name,
		ContentType: contentType,
	}
}

// FormPart is one part of a [FormData], either a value or a file.
type FormPart struct {
	Name  string
	Value string

	File        *UploadFile
	FileName    string
	ContentType string
	reader      io.Reader
}

// IsFile reports whether the part carries file content.
func (p FormPart) IsFile() bool { return p.File != nil || p.reader != nil }

// FormData is an ordered multipart body. Repeated names are kept, which the
// backend relies on for indexed fields such as komposisi[0][bahan_id].
type FormData struct {
	parts []FormPart
}

// NewFormData returns an empty form.
func NewFormData() *FormData {
	return &FormData{}
}

// Append adds a plain value.
func (f *FormData) Append(name, value string) *FormData {
	f.parts = append(f.parts, FormPart{Name: name, Value: value})
	return f
}

// AppendFile adds a file read from disk when the request is sent. A nil
// file is ignored.
func (f *FormData) AppendFile(name string, file *UploadFile) *FormData {
	if file == nil {
		return f
	}
	f.parts = append(f.parts, FormPart{Name: name, File: file, FileName: file.Name, ContentType: file.ContentType})
	return f
}

// AppendReader adds file content from r.
func (f *FormData) AppendReader(name, fileName, contentType string, r io.Reader) *FormData {
	f.parts = append(f.parts, FormPart{Name: name, FileName: fileName, ContentType: contentType, reader: r})
	return f
}

// Parts returns the parts in insertion order.
func (f *FormData) Parts() []FormPart {
	return append([]FormPart(nil), f.parts...)
}

// Get returns the first plain value named name.
func (f *FormData) Get(name string) (string, bool) {
	for _, p := range f.parts {
		if p.Name == name && !p.IsFile() {
			return p.Value, true
		}
	}
	return "", false
}

// multipartFields opens the referenced files and converts the form into
// resty fields. The returned func closes the opened files.
func (f *FormData) multipartFields() ([]*resty.MultipartField, func(), error) {
	var opened []io.Closer
	closeAll := func() {
		for _, c := range opened {
			_ = c.Close()
		}
	}

	fields := make([]*resty.MultipartField, 0, len(f.parts))
	for _, p := range f.parts {
		switch {
		case p.File != nil:
			file, err := os.Open(p.File.Path)
			if err != nil {
				closeAll()
				return nil, func() {}, fmt.Errorf("open %s: %w", p.Name, err)
			}
			opened = append(opened, file)
			fields = append(fields, &resty.MultipartField{
				Param:       p.Name,
				FileName:    p.FileName,
				ContentType: p.ContentType,
				Reader:      file,
			})
		case p.reader != nil:
			if p.FileName == "" {
				closeAll()
				return nil, func() {}, errors.New("file part " + p.Name + " has no file name")
			}
			fields = append(fields, &resty.MultipartField{
				Param:       p.Name,
				FileName:    p.FileName,
				ContentType: p.ContentType,
				Reader:      p.reader,
			})
		default:
			fields = append(fields, &resty.MultipartField{
				Param:  p.Name,
				Reader: bytes.NewBufferString(p.Value),
			})
		}
	}

	return fields, closeAll, nil
}
