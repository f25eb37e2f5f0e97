package form

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-app/internal/infra/storage"
)

// File reads an optional multipart upload field into memory. A missing field
// returns (nil, nil) so handlers can treat "no new file" as keep-current.
func File(c *gin.Context, field string) (*storage.File, error) {
	fh, err := c.FormFile(field)
	if err == http.ErrMissingFile || err == http.ErrNotMultipart {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return read(fh)
}

// Files reads every upload under a repeated multipart field.
func Files(c *gin.Context, field string) ([]storage.File, error) {
	mf, err := c.MultipartForm()
	if err == http.ErrNotMultipart {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []storage.File
	for _, fh := range mf.File[field] {
		f, err := read(fh)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, nil
}

func read(fh *multipart.FileHeader) (*storage.File, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return &storage.File{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
