package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal-api/internal/storage"
	"jobportal-api/pkg/models"
)

type fakeSavedJobResolver struct {
	listSavedJobs func(userID string) ([]models.Job, error)
}

func (f *fakeSavedJobResolver) ListSavedJobs(_ context.Context, userID string) ([]models.Job, error) {
	return f.listSavedJobs(userID)
}

func TestSavedJobsHandler(t *testing.T) {
	t.Run("resolves saved jobs", func(t *testing.T) {
		index := &fakeSavedJobResolver{
			listSavedJobs: func(userID string) ([]models.Job, error) {
				assert.Equal(t, "user-1", userID)
				// One saved row referenced a deleted job; the batched
				// lookup already filtered it out.
				return []models.Job{{"title": "Engineer"}}, nil
			},
		}

		c, rec := newJSONContext(t, http.MethodGet, "/", "")
		c.SetPath("/api/savedJobs/:userId")
		c.SetParamNames("userId")
		c.SetParamValues("user-1")
		require.NoError(t, SavedJobsHandler(index)(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["status"])
		assert.Len(t, body["savedJobs"], 1)
	})

	t.Run("no saved rows is 404", func(t *testing.T) {
		index := &fakeSavedJobResolver{
			listSavedJobs: func(string) ([]models.Job, error) { return nil, storage.ErrNotFound },
		}

		c, rec := newJSONContext(t, http.MethodGet, "/", "")
		c.SetPath("/api/savedJobs/:userId")
		c.SetParamNames("userId")
		c.SetParamValues("user-1")
		require.NoError(t, SavedJobsHandler(index)(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No saved jobs found for this user", decodeBody(t, rec)["message"])
	})

	t.Run("resolution failure is 500", func(t *testing.T) {
		index := &fakeSavedJobResolver{
			listSavedJobs: func(string) ([]models.Job, error) { return nil, errors.New("store down") },
		}

		c, rec := newJSONContext(t, http.MethodGet, "/", "")
		c.SetPath("/api/savedJobs/:userId")
		c.SetParamNames("userId")
		c.SetParamValues("user-1")
		require.NoError(t, SavedJobsHandler(index)(c))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to fetch saved jobs", decodeBody(t, rec)["message"])
	})
}
