package service

import "io"

// Upload is a file part extracted from a multipart request.
type Upload struct {
	File     io.Reader
	Filename string
}
