package server

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cardreveal/internal/catalog"
	"cardreveal/internal/domain"
	"cardreveal/internal/remote"
)

// maxUploadBytes bounds a single capture upload.
const maxUploadBytes = 10 << 20

// AssetLists is the read side of the asset catalog, one list at a time.
type AssetLists interface {
	Prompts() ([]string, error)
	Features() ([]string, error)
	Images() ([]string, error)
}

// Handler serves the reveal API.
type Handler struct {
	assets    AssetLists
	images    fs.FS
	store     domain.ArtifactStore
	publicURL string
	logger    *zap.Logger
}

// NewHandler builds a Handler. images is the asset tree holding the images/
// directory; nil disables /images. publicURL is the externally visible
// origin used in upload URLs; empty means derive it from each request.
func NewHandler(assets AssetLists, images fs.FS, store domain.ArtifactStore, publicURL string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		assets:    assets,
		images:    images,
		store:     store,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}
}

// Register mounts all routes on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET(remote.PromptsPath, h.ListPrompts)
	e.GET(remote.FeaturesPath, h.ListFeatures)
	e.GET(remote.ImagesPath, h.ListImages)
	e.POST(remote.UploadPath, h.Upload)
	e.GET("/uploads/:name", h.GetUpload)
	e.GET("/share/*", h.SharePage)
	if h.images != nil {
		if sub, err := fs.Sub(h.images, catalog.ImagesDir); err == nil {
			e.StaticFS("/"+catalog.ImagesDir, sub)
		}
	}
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListPrompts(c echo.Context) error {
	prompts, err := h.assets.Prompts()
	if err != nil {
		return h.internal(c, "Failed to load prompts", err)
	}
	return c.JSON(http.StatusOK, PromptsResponse{Prompts: nonNil(prompts)})
}

func (h *Handler) ListFeatures(c echo.Context) error {
	features, err := h.assets.Features()
	if err != nil {
		return h.internal(c, "Failed to load features", err)
	}
	return c.JSON(http.StatusOK, FeaturesResponse{Features: nonNil(features)})
}

func (h *Handler) ListImages(c echo.Context) error {
	images, err := h.assets.Images()
	if err != nil {
		return h.internal(c, "Failed to list images", err)
	}
	return c.JSON(http.StatusOK, ImagesResponse{Images: nonNil(images)})
}

// Upload stores the multipart "file" field and returns its public URL.
func (h *Handler) Upload(c echo.Context) error {
	fh, err := c.FormFile(remote.UploadField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing file"})
	}
	f, err := fh.Open()
	if err != nil {
		return h.internal(c, "Upload failed", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return h.internal(c, "Upload failed", err)
	}
	if len(data) == 0 || len(data) > maxUploadBytes {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing file"})
	}

	contentType := fh.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	a, err := h.store.Put(c.Request().Context(), data, contentType)
	if err != nil {
		return h.internal(c, "Upload failed", err)
	}
	h.logger.Info("capture stored",
		zap.String("request_id", requestID(c)),
		zap.String("name", a.Name),
		zap.Int("bytes", a.Size),
	)
	return c.JSON(http.StatusOK, UploadResponse{URL: h.origin(c) + "/uploads/" + a.Name})
}

// GetUpload serves a stored capture.
func (h *Handler) GetUpload(c echo.Context) error {
	a, err := h.store.Get(c.Request().Context(), c.Param("name"))
	if errors.Is(err, domain.ErrArtifactNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	}
	if err != nil {
		return h.internal(c, "internal error", err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=31536000, immutable")
	return c.Blob(http.StatusOK, a.ContentType, a.Data)
}

// SharePage renders the social preview for the image URL encoded in the
// path.
func (h *Handler) SharePage(c echo.Context) error {
	imageURL := decodeShareID(c.Param("*"))
	if imageURL == "" {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	}
	body, err := renderPreview(previewData{
		Title:       PreviewTitle,
		Description: PreviewDescription,
		Image:       imageURL,
		PageURL:     h.origin(c) + c.Request().URL.RequestURI(),
	})
	if err != nil {
		return h.internal(c, "internal error", err)
	}
	return c.HTMLBlob(http.StatusOK, body)
}

func (h *Handler) internal(c echo.Context, msg string, err error) error {
	h.logger.Error(msg,
		zap.String("request_id", requestID(c)),
		zap.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
}

func (h *Handler) origin(c echo.Context) string {
	if h.publicURL != "" {
		return h.publicURL
	}
	return c.Scheme() + "://" + c.Request().Host
}

// decodeShareID undoes the component encoding of a share id. The router may
// hand over the raw or the already unescaped path, so decoding is attempted
// only when escapes remain.
func decodeShareID(id string) string {
	if !strings.Contains(id, "%") {
		return id
	}
	decoded, err := url.PathUnescape(id)
	if err != nil {
		return id
	}
	return decoded
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
