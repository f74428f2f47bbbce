package capture

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"cardreveal/internal/domain"
)

// cardSelector is the element the browser backend screenshots.
const cardSelector = "#reveal"

// imagesLoadedJS resolves to true once every <img> has loaded, or false as
// soon as one fails.
const imagesLoadedJS = `() => Promise.all(Array.from(document.images).map(img =>
	img.complete ? img.naturalWidth > 0 : new Promise(resolve => {
		img.addEventListener('load', () => resolve(true), { once: true });
		img.addEventListener('error', () => resolve(false), { once: true });
	})
)).then(results => results.every(Boolean))`

var cardPage = template.Must(template.New("card").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<style>
  html, body { margin: 0; background: {{.Background}}; }
  #reveal { width: {{.Width}}px; padding: 16px; box-sizing: border-box;
            background: {{.Background}}; color: #fff;
            font-family: "Go", "Helvetica Neue", Arial, sans-serif; }
  .panel { width: 100%; aspect-ratio: 4 / 5; object-fit: cover; display: block;
           background: linear-gradient(180deg, #6d28d9, #db2777); }
  .pill { display: inline-block; margin-top: 16px; padding: 0 12px; line-height: 32px;
          background: #262626; font-weight: 700; font-size: 14px; }
  .prompt { margin: 16px 0 0; font-size: 18px; line-height: 24px; }
</style>
</head>
<body>
<div id="reveal">
  {{if .Image}}<img class="panel" src="{{.Image}}" alt="">{{else}}<div class="panel"></div>{{end}}
  {{if .View.Feature}}<div class="pill">{{.View.Feature}}</div>{{end}}
  {{if .View.Prompt}}<p class="prompt">{{.View.Prompt}}</p>{{end}}
</div>
</body>
</html>`))

// Browser renders views in headless Chrome and screenshots the card.
//
// The page is loaded from a string with no origin, so images are fetched
// through the resolver and inlined as data URIs. The browser is started
// lazily on first capture and reused; call Close to shut it down.
type Browser struct {
	opts       Options
	controlURL string
	resolver   *Resolver
	logger     *zap.Logger

	mu      sync.Mutex
	browser *rod.Browser
}

// NewBrowser returns a browser capturer. controlURL attaches to a running
// Chrome DevTools endpoint; empty launches a local headless instance.
// resolver loads image references; nil only serves views without images.
func NewBrowser(controlURL string, resolver *Resolver, opts Options, logger *zap.Logger) (*Browser, error) {
	opts = opts.normalized()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if resolver == nil {
		resolver = &Resolver{}
	}
	return &Browser{opts: opts, controlURL: controlURL, resolver: resolver, logger: logger}, nil
}

// Capture loads view into a fresh page and screenshots the card element.
func (b *Browser) Capture(ctx context.Context, view domain.RevealView) ([]byte, error) {
	if view.IsZero() {
		return nil, fmt.Errorf("%w: no revealed content", domain.ErrCaptureFailed)
	}
	html, err := b.render(ctx, view)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCaptureFailed, err)
	}

	browser, err := b.connect()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCaptureFailed, err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("%w: create page: %v", domain.ErrCaptureFailed, err)
	}
	defer func() { _ = page.Close() }()
	page = page.Context(ctx)

	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             b.opts.Width,
		Height:            b.opts.Width * 2,
		DeviceScaleFactor: b.opts.PixelRatio,
		Mobile:            false,
	}).Call(page); err != nil {
		return nil, fmt.Errorf("%w: set device metrics: %v", domain.ErrCaptureFailed, err)
	}

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("%w: load page: %v", domain.ErrCaptureFailed, err)
	}
	res, err := page.Eval(imagesLoadedJS)
	if err != nil {
		return nil, fmt.Errorf("%w: wait for images: %v", domain.ErrCaptureFailed, err)
	}
	if !res.Value.Bool() {
		return nil, fmt.Errorf("%w: load image %q", domain.ErrCaptureFailed, view.Image)
	}

	el, err := page.Element(cardSelector)
	if err != nil {
		return nil, fmt.Errorf("%w: find card: %v", domain.ErrCaptureFailed, err)
	}
	shot, err := el.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: screenshot: %v", domain.ErrCaptureFailed, err)
	}
	b.logger.Debug("browser capture rendered", zap.Int("bytes", len(shot)))
	return shot, nil
}

// Close shuts down the browser if one was started.
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.browser == nil {
		return nil
	}
	err := b.browser.Close()
	b.browser = nil
	return err
}

// connect starts or attaches to Chrome once. The browser outlives any single
// capture, so it is not bound to the caller's context.
func (b *Browser) connect() (*rod.Browser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.browser != nil {
		return b.browser, nil
	}

	controlURL := b.controlURL
	if controlURL == "" {
		u, err := launcher.New().Headless(true).Launch()
		if err != nil {
			return nil, fmt.Errorf("launch chrome: %w", err)
		}
		controlURL = u
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	b.logger.Info("browser connected", zap.String("control_url", controlURL))
	b.browser = browser
	return browser, nil
}

type pageData struct {
	Background template.CSS
	Width      int
	Image      template.URL
	View       domain.RevealView
}

func (b *Browser) render(ctx context.Context, view domain.RevealView) (string, error) {
	data := pageData{
		Background: template.CSS(b.opts.Background),
		Width:      b.opts.Width,
		View:       view,
	}
	if view.Image != "" {
		uri, err := b.inline(ctx, view.Image)
		if err != nil {
			return "", err
		}
		data.Image = uri
	}

	var buf bytes.Buffer
	if err := cardPage.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}

// inline loads ref and returns it as a data URI. Anything that does not sniff
// as an image is rejected.
func (b *Browser) inline(ctx context.Context, ref string) (template.URL, error) {
	raw, err := b.resolver.Fetch(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("load image %q: %w", ref, err)
	}
	ct := http.DetectContentType(raw)
	if !strings.HasPrefix(ct, "image/") {
		return "", fmt.Errorf("load image %q: unsupported content type %s", ref, ct)
	}
	return template.URL("data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(raw)), nil
}

var _ domain.Capturer = (*Browser)(nil)
