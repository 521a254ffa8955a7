// Package post publishes finished images. The generation core has no
// dependency on this package; it only supplies bytes and a caption.
package post

import (
	"context"

	"go.uber.org/zap"
)

// PostID identifies a published status on the target platform.
type PostID string

// Poster publishes an encoded image with a caption.
type Poster interface {
	Post(ctx context.Context, image []byte, caption string) (PostID, error)
}

// NoopPoster satisfies Poster without talking to any network. It is used
// when posting credentials are absent, so a bot run still produces its image
// and logs instead of failing.
type NoopPoster struct {
	Log *zap.Logger
}

// Post discards the image and succeeds.
func (n NoopPoster) Post(_ context.Context, image []byte, caption string) (PostID, error) {
	if n.Log != nil {
		n.Log.Info("posting disabled, discarding image",
			zap.Int("bytes", len(image)),
			zap.String("caption", caption))
	}
	return "", nil
}
