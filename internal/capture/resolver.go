package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	_ "golang.org/x/image/webp"
)

const maxImageBytes = 16 << 20

// ImageResolver loads the image a content reference points at.
type ImageResolver interface {
	Resolve(ctx context.Context, ref string) (image.Image, error)
}

// Resolver looks references up in an asset tree first and falls back to
// fetching them over HTTP. Absolute http(s) references always go to the
// network.
type Resolver struct {
	FS      fs.FS        // asset tree, e.g. the catalog's
	BaseURL string       // prefix for relative references; empty disables
	HTTP    *http.Client // defaults to http.DefaultClient
}

// Resolve fetches and decodes ref. PNG, JPEG, GIF and WebP are supported.
func (r *Resolver) Resolve(ctx context.Context, ref string) (image.Image, error) {
	raw, err := r.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", ref, err)
	}
	return img, nil
}

// Fetch returns the raw bytes behind ref without decoding them.
func (r *Resolver) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if ref == "" {
		return nil, errors.New("empty image reference")
	}
	if isAbsURL(ref) {
		return r.get(ctx, ref)
	}

	var fsErr error
	if r.FS != nil {
		name, err := url.PathUnescape(strings.TrimPrefix(ref, "/"))
		if err != nil {
			return nil, fmt.Errorf("bad image reference %q: %w", ref, err)
		}
		b, err := fs.ReadFile(r.FS, name)
		if err == nil {
			return b, nil
		}
		fsErr = err
	}
	if r.BaseURL != "" {
		return r.get(ctx, strings.TrimRight(r.BaseURL, "/")+"/"+strings.TrimPrefix(ref, "/"))
	}
	if fsErr != nil {
		return nil, fsErr
	}
	return nil, fmt.Errorf("no source for image %q", ref)
}

func (r *Resolver) get(ctx context.Context, u string) ([]byte, error) {
	client := r.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("get %s: %s", u, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
}

func isAbsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

var _ ImageResolver = (*Resolver)(nil)
