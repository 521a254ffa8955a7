package post

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// MastodonPoster publishes statuses via the Mastodon REST API: a media
// upload followed by a status referencing it. It performs no retries;
// transient network failures are the caller's concern.
type MastodonPoster struct {
	Server      string
	AccessToken string

	// Client defaults to http.DefaultClient when nil.
	Client *http.Client
}

// Post uploads the image and publishes a status with the caption.
func (m *MastodonPoster) Post(ctx context.Context, image []byte, caption string) (PostID, error) {
	mediaID, err := m.upload(ctx, image)
	if err != nil {
		return "", fmt.Errorf("uploading media: %w", err)
	}

	form := url.Values{}
	form.Set("status", caption)
	form.Add("media_ids[]", mediaID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Server+"/api/v1/statuses", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var status struct {
		ID string `json:"id"`
	}
	if err := m.do(req, &status); err != nil {
		return "", fmt.Errorf("publishing status: %w", err)
	}
	return PostID(status.ID), nil
}

func (m *MastodonPoster) upload(ctx context.Context, image []byte) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "automaton.png")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(image); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Server+"/api/v1/media", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var media struct {
		ID string `json:"id"`
	}
	if err := m.do(req, &media); err != nil {
		return "", err
	}
	return media.ID, nil
}

func (m *MastodonPoster) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+m.AccessToken)

	client := m.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: %s: %s", req.Method, req.URL.Path, resp.Status, bytes.TrimSpace(msg))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
