package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal-api/pkg/models"
)

type fakeIntake struct {
	accept func(fieldName string, src io.Reader, originalName string) (*models.FileHandle, error)
}

func (f *fakeIntake) Accept(fieldName string, src io.Reader, originalName string) (*models.FileHandle, error) {
	return f.accept(fieldName, src, originalName)
}

func acceptedHandle(fieldName string, _ io.Reader, _ string) (*models.FileHandle, error) {
	return &models.FileHandle{
		FileName: fieldName + "-1700000000000.pdf",
		Path:     "uploads/" + fieldName + "-1700000000000.pdf",
	}, nil
}

type fakeApplicationStore struct {
	submit func(application models.Application) error
}

func (f *fakeApplicationStore) Submit(_ context.Context, application models.Application) error {
	return f.submit(application)
}

// newMultipartContext builds an echo context carrying a multipart form with
// the given fields and, when fileName is non-empty, one "cv" file part.
func newMultipartContext(t *testing.T, target string, fields map[string]string, fileName string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile(cvField, fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte("pdf bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func applicationFields() map[string]string {
	return map[string]string{
		"jobId":            "64b0c8f2e4b0c8f2e4b0c8f2",
		"name":             "Ada",
		"email":            "ada@x.com",
		"phone":            "555-0100",
		"address":          "1 Main St",
		"describeYourself": "Engineer",
	}
}

func TestApplyHandler(t *testing.T) {
	t.Run("submits the application with the stored cv path", func(t *testing.T) {
		var got models.Application
		store := &fakeApplicationStore{
			submit: func(application models.Application) error {
				got = application
				return nil
			},
		}
		intake := &fakeIntake{accept: acceptedHandle}

		c, rec := newMultipartContext(t, "/api/apply", applicationFields(), "resume.pdf")
		require.NoError(t, ApplyHandler(intake, store)(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Application submitted successfully", decodeBody(t, rec)["message"])
		assert.Equal(t, "64b0c8f2e4b0c8f2e4b0c8f2", got.JobID)
		assert.Equal(t, "uploads/cv-1700000000000.pdf", got.CV)
	})

	t.Run("missing file is 400", func(t *testing.T) {
		store := &fakeApplicationStore{
			submit: func(models.Application) error {
				t.Fatal("store must not be reached")
				return nil
			},
		}
		intake := &fakeIntake{accept: acceptedHandle}

		c, rec := newMultipartContext(t, "/api/apply", applicationFields(), "")
		require.NoError(t, ApplyHandler(intake, store)(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "CV file is required", decodeBody(t, rec)["message"])
	})

	t.Run("missing required field is 400 before any store write", func(t *testing.T) {
		store := &fakeApplicationStore{
			submit: func(models.Application) error {
				t.Fatal("store must not be reached")
				return nil
			},
		}
		intake := &fakeIntake{accept: acceptedHandle}

		fields := applicationFields()
		delete(fields, "phone")
		c, rec := newMultipartContext(t, "/api/apply", fields, "resume.pdf")
		require.NoError(t, ApplyHandler(intake, store)(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("intake failure is 500", func(t *testing.T) {
		store := &fakeApplicationStore{
			submit: func(models.Application) error {
				t.Fatal("store must not be reached")
				return nil
			},
		}
		intake := &fakeIntake{
			accept: func(string, io.Reader, string) (*models.FileHandle, error) {
				return nil, errors.New("disk full")
			},
		}

		c, rec := newMultipartContext(t, "/api/apply", applicationFields(), "resume.pdf")
		require.NoError(t, ApplyHandler(intake, store)(c))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("store failure is 500", func(t *testing.T) {
		store := &fakeApplicationStore{
			submit: func(models.Application) error { return errors.New("store down") },
		}
		intake := &fakeIntake{accept: acceptedHandle}

		c, rec := newMultipartContext(t, "/api/apply", applicationFields(), "resume.pdf")
		require.NoError(t, ApplyHandler(intake, store)(c))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
