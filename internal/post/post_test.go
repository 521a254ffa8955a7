package post

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopPoster(t *testing.T) {
	id, err := NoopPoster{}.Post(context.Background(), []byte{1, 2, 3}, "Rule 30")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestMastodonPoster(t *testing.T) {
	var gotStatus, gotMediaID, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/media":
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, r.ParseMultipartForm(1<<20))
			f, _, err := r.FormFile("file")
			require.NoError(t, err)
			f.Close()
			json.NewEncoder(w).Encode(map[string]string{"id": "media-7"})
		case "/api/v1/statuses":
			require.NoError(t, r.ParseForm())
			gotStatus = r.PostForm.Get("status")
			gotMediaID = r.PostForm.Get("media_ids[]")
			json.NewEncoder(w).Encode(map[string]string{"id": "status-9"})
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	poster := &MastodonPoster{Server: srv.URL, AccessToken: "secret", Client: srv.Client()}
	id, err := poster.Post(context.Background(), []byte("png-bytes"), "Rule 30")
	require.NoError(t, err)

	assert.Equal(t, PostID("status-9"), id)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "Rule 30", gotStatus)
	assert.Equal(t, "media-7", gotMediaID)
}

func TestMastodonPosterErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "access denied", http.StatusUnauthorized)
	}))
	defer srv.Close()

	poster := &MastodonPoster{Server: srv.URL, AccessToken: "wrong", Client: srv.Client()}
	_, err := poster.Post(context.Background(), []byte("png-bytes"), "Rule 30")
	assert.ErrorContains(t, err, "401")
}
