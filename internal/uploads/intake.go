// Package uploads persists uploaded binaries under a fixed directory and
// hands back the path handles the resume and application stores record.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"jobportal-api/pkg/models"
)

// Intake accepts one uploaded file per request
type Intake struct {
	dir string
	now func() time.Time
}

// New creates an intake rooted at dir, creating the directory if needed
func New(dir string) (*Intake, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory %s: %w", dir, err)
	}
	return &Intake{dir: dir, now: time.Now}, nil
}

// Accept persists the uploaded bytes and returns the file handle. The
// generated name is fieldName-<unix millis> plus the original extension;
// two same-field uploads landing in the same millisecond would collide,
// which is accepted at this system's scale.
func (i *Intake) Accept(fieldName string, src io.Reader, originalName string) (*models.FileHandle, error) {
	name := fieldName + "-" + strconv.FormatInt(i.now().UnixMilli(), 10) + filepath.Ext(originalName)
	path := filepath.Join(i.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating upload file %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("writing upload file %s: %w", path, err)
	}

	return &models.FileHandle{FileName: name, Path: path}, nil
}
