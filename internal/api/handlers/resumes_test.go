package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal-api/pkg/models"
)

type fakeResumeStore struct {
	upload func(resume models.Resume) error
}

func (f *fakeResumeStore) Upload(_ context.Context, resume models.Resume) error {
	return f.upload(resume)
}

func TestUploadCVHandler(t *testing.T) {
	t.Run("stores metadata and returns the file info", func(t *testing.T) {
		var got models.Resume
		store := &fakeResumeStore{
			upload: func(resume models.Resume) error {
				got = resume
				return nil
			},
		}
		intake := &fakeIntake{accept: acceptedHandle}

		fields := map[string]string{"email": "ada@x.com"}
		c, rec := newMultipartContext(t, "/api/upload-cv", fields, "resume.pdf")
		require.NoError(t, UploadCVHandler(intake, store)(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "CV uploaded successfully!", body["message"])

		file, ok := body["file"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "cv-1700000000000.pdf", file["filename"])

		assert.Equal(t, "ada@x.com", got.Email)
		assert.Equal(t, "cv-1700000000000.pdf", got.FileName)
		assert.Equal(t, "uploads/cv-1700000000000.pdf", got.FilePath)
	})

	t.Run("missing file is 400", func(t *testing.T) {
		store := &fakeResumeStore{
			upload: func(models.Resume) error {
				t.Fatal("store must not be reached")
				return nil
			},
		}
		intake := &fakeIntake{accept: acceptedHandle}

		c, rec := newMultipartContext(t, "/api/upload-cv", map[string]string{"email": "ada@x.com"}, "")
		require.NoError(t, UploadCVHandler(intake, store)(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No file uploaded", decodeBody(t, rec)["message"])
	})

	t.Run("store failure is 500", func(t *testing.T) {
		store := &fakeResumeStore{
			upload: func(models.Resume) error { return errors.New("store down") },
		}
		intake := &fakeIntake{accept: acceptedHandle}

		c, rec := newMultipartContext(t, "/api/upload-cv", nil, "resume.pdf")
		require.NoError(t, UploadCVHandler(intake, store)(c))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
