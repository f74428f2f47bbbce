package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cardreveal/internal/domain"
)

// Server API paths.
const (
	PromptsPath  = "/api/prompts"
	FeaturesPath = "/api/features"
	ImagesPath   = "/api/images"
	UploadPath   = "/api/upload"

	// UploadField is the multipart field carrying the capture.
	UploadField = "file"
)

// Client talks to a revealserver at Base.
type Client struct {
	Base   string
	HTTP   *http.Client
	logger *zap.Logger
}

// NewClient returns a client for base. A nil httpClient means
// http.DefaultClient.
func NewClient(base string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: httpClient, logger: logger}
}

// Load fetches the three lists in parallel. A list that cannot be fetched
// is returned empty and its error is joined into the result.
func (c *Client) Load(ctx context.Context) (domain.Catalog, error) {
	var prompts struct {
		Prompts []string `json:"prompts"`
	}
	var features struct {
		Features []string `json:"features"`
	}
	var images struct {
		Images []string `json:"images"`
	}
	var (
		errs [3]error
		g    errgroup.Group
	)
	g.Go(func() error { errs[0] = c.getJSON(ctx, PromptsPath, &prompts); return nil })
	g.Go(func() error { errs[1] = c.getJSON(ctx, FeaturesPath, &features); return nil })
	g.Go(func() error { errs[2] = c.getJSON(ctx, ImagesPath, &images); return nil })
	_ = g.Wait()

	cat := domain.Catalog{
		Prompts:  orEmpty(prompts.Prompts, errs[0]),
		Features: orEmpty(features.Features, errs[1]),
		Images:   orEmpty(images.Images, errs[2]),
	}

	var failed []error
	for _, err := range errs {
		if err != nil {
			failed = append(failed, fmt.Errorf("%w: %v", domain.ErrAssetUnavailable, err))
		}
	}
	if len(failed) > 0 {
		joined := errors.Join(failed...)
		c.logger.Warn("remote asset lists unavailable, using fallbacks", zap.Error(joined))
		return cat, joined
	}
	return cat, nil
}

// Upload posts data to the server and returns the URL it is served at.
func (c *Client) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty capture", domain.ErrUploadFailed)
	}

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="card-reveal.png"`, UploadField))
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := c.post(ctx, UploadPath, mw.FormDataContentType(), body, &out); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("%w: server returned no url", domain.ErrUploadFailed)
	}
	c.logger.Debug("capture uploaded", zap.String("url", out.URL), zap.Int("bytes", len(data)))
	return out.URL, nil
}

func (c *Client) post(ctx context.Context, path, contentType string, in io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, in)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req, path, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%s %s: %s", strings.ToLower(req.Method), path, resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func orEmpty(list []string, err error) []string {
	if err != nil || list == nil {
		return []string{}
	}
	return list
}

var (
	_ domain.AssetCatalog = (*Client)(nil)
	_ domain.Uploader     = (*Client)(nil)
)
