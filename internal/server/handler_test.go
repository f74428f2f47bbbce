package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cardreveal/internal/catalog"
	"cardreveal/internal/remote"
	"cardreveal/internal/server"
	"cardreveal/internal/share"
	"cardreveal/internal/store"
)

type brokenAssets struct{}

func (brokenAssets) Prompts() ([]string, error)  { return nil, errors.New("disk") }
func (brokenAssets) Features() ([]string, error) { return nil, errors.New("disk") }
func (brokenAssets) Images() ([]string, error)   { return nil, errors.New("disk") }

func testAssets() fstest.MapFS {
	return fstest.MapFS{
		catalog.PromptsFile:  {Data: []byte("# prompts\nfirst prompt\n\nsecond prompt\n")},
		catalog.FeaturesFile: {Data: []byte("Offline-first sync\n")},
		catalog.ImagesFile:   {Data: []byte(`["/images/a%20b.png"]`)},
		"images/a b.png":     {Data: []byte("fake png")},
	}
}

func newServer(t *testing.T, assets server.AssetLists) *echo.Echo {
	t.Helper()
	fsys := testAssets()
	if assets == nil {
		assets = catalog.NewFS(fsys, nil)
	}
	st, err := store.NewArtifactFileStore(t.TempDir())
	require.NoError(t, err)
	h := server.NewHandler(assets, fsys, st, "https://reveal.test", nil)
	return server.New(h, nil)
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	return do(e, httptest.NewRequest(http.MethodGet, target, nil))
}

func uploadRequest(t *testing.T, field string, data []byte) *http.Request {
	t.Helper()
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile(field, "card-reveal.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, remote.UploadPath, body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	return req
}

func TestHealthz(t *testing.T) {
	rec := get(newServer(t, nil), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRequestID_Propagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := do(newServer(t, nil), req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
}

func TestAssetLists_OK(t *testing.T) {
	e := newServer(t, nil)

	var prompts server.PromptsResponse
	rec := get(e, remote.PromptsPath)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prompts))
	assert.Equal(t, []string{"first prompt", "second prompt"}, prompts.Prompts)

	var features server.FeaturesResponse
	rec = get(e, remote.FeaturesPath)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &features))
	assert.Equal(t, []string{"Offline-first sync"}, features.Features)

	var images server.ImagesResponse
	rec = get(e, remote.ImagesPath)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &images))
	assert.Equal(t, []string{"/images/a%20b.png"}, images.Images)
}

func TestAssetLists_FailureIs500JSON(t *testing.T) {
	e := newServer(t, brokenAssets{})
	for path, msg := range map[string]string{
		remote.PromptsPath:  "Failed to load prompts",
		remote.FeaturesPath: "Failed to load features",
		remote.ImagesPath:   "Failed to list images",
	} {
		rec := get(e, path)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
		var body server.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, msg, body.Error)
	}
}

func TestUpload_RoundTrip(t *testing.T) {
	e := newServer(t, nil)
	png := []byte("\x89PNG\r\n\x1a\nrest")

	rec := do(e, uploadRequest(t, remote.UploadField, png))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var up server.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &up))
	require.True(t, strings.HasPrefix(up.URL, "https://reveal.test/uploads/card-"), up.URL)

	rec = get(e, strings.TrimPrefix(up.URL, "https://reveal.test"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, png, rec.Body.Bytes())
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}

func TestUpload_MissingFile(t *testing.T) {
	rec := do(newServer(t, nil), uploadRequest(t, "other", []byte("x")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing file"}`, rec.Body.String())
}

func TestGetUpload_NotFound(t *testing.T) {
	e := newServer(t, nil)
	assert.Equal(t, http.StatusNotFound, get(e, "/uploads/card-0123456789abcdef0123.png").Code)
	assert.Equal(t, http.StatusNotFound, get(e, "/uploads/index.json").Code)
}

func TestSharePage_RendersMetadata(t *testing.T) {
	e := newServer(t, nil)
	imageURL := "https://reveal.test/uploads/card-0123456789abcdef0123.png"

	rec := get(e, strings.TrimPrefix(share.PreviewPath("https://reveal.test", imageURL), "https://reveal.test"))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `<title>Card Prompt Maker</title>`)
	assert.Contains(t, body, `<meta property="og:image" content="`+imageURL+`">`)
	assert.Contains(t, body, `<meta name="twitter:card" content="summary_large_image">`)
	assert.Contains(t, body, `<meta name="twitter:image" content="`+imageURL+`">`)
}

func TestStaticImages(t *testing.T) {
	rec := get(newServer(t, nil), "/images/a%20b.png")
	require.Equal(t, http.StatusOK, rec.Code)
	b, _ := io.ReadAll(rec.Body)
	assert.Equal(t, "fake png", string(b))
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	e := newServer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx, e, "127.0.0.1:0", zap.NewNop()) }()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
