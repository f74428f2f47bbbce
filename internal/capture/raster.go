package capture

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"cardreveal/internal/domain"
)

// Layout, in layout pixels. Multiplied by the pixel ratio at draw time.
const (
	padding      = 16
	gap          = 16
	pillHeight   = 32
	pillPadX     = 12
	featureSize  = 14
	promptSize   = 18
	promptLeadPx = 24
)

var (
	textColor   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	pillColor   = color.RGBA{0x26, 0x26, 0x26, 0xff}
	gradientTop = color.RGBA{0x6d, 0x28, 0xd9, 0xff}
	gradientBot = color.RGBA{0xdb, 0x27, 0x77, 0xff}
)

// Raster composites a reveal view into a PNG without external programs.
type Raster struct {
	opts     Options
	bg       color.RGBA
	resolver ImageResolver
	regular  *opentype.Font
	bold     *opentype.Font
	logger   *zap.Logger
}

// NewRaster returns a raster capturer that loads images through resolver.
func NewRaster(resolver ImageResolver, opts Options, logger *zap.Logger) (*Raster, error) {
	opts = opts.normalized()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	bg, err := ParseHexColor(opts.Background)
	if err != nil {
		return nil, err
	}
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Raster{
		opts:     opts,
		bg:       bg,
		resolver: resolver,
		regular:  regular,
		bold:     bold,
		logger:   logger,
	}, nil
}

// Capture renders view: the image panel (or a gradient placeholder when the
// round revealed no image), the feature pill and the wrapped prompt.
func (r *Raster) Capture(ctx context.Context, view domain.RevealView) ([]byte, error) {
	if view.IsZero() {
		return nil, fmt.Errorf("%w: no revealed content", domain.ErrCaptureFailed)
	}

	var photo image.Image
	if view.Image != "" {
		if r.resolver == nil {
			return nil, fmt.Errorf("%w: no image resolver", domain.ErrCaptureFailed)
		}
		img, err := r.resolver.Resolve(ctx, view.Image)
		if err != nil {
			return nil, fmt.Errorf("%w: load image %q: %v", domain.ErrCaptureFailed, view.Image, err)
		}
		photo = img
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCaptureFailed, err)
	}

	// Faces keep glyph caches and are not safe for concurrent use, so each
	// capture builds its own.
	featureFace, err := r.face(r.bold, featureSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCaptureFailed, err)
	}
	defer featureFace.Close()
	promptFace, err := r.face(r.regular, promptSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCaptureFailed, err)
	}
	defer promptFace.Close()

	px := func(v int) int { return int(math.Round(float64(v) * r.opts.PixelRatio)) }

	width := px(r.opts.Width)
	inner := width - 2*px(padding)
	panelH := inner * 5 / 4

	lines := wrap(promptFace, view.Prompt, inner)
	height := px(padding) + panelH
	if view.Feature != "" {
		height += px(gap) + px(pillHeight)
	}
	if len(lines) > 0 {
		height += px(gap) + len(lines)*px(promptLeadPx)
	}
	height += px(padding)

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(r.bg), image.Point{}, draw.Src)

	y := px(padding)
	panel := image.Rect(px(padding), y, px(padding)+inner, y+panelH)
	if photo != nil {
		cover(canvas, panel, photo)
	} else {
		gradient(canvas, panel, gradientTop, gradientBot)
	}
	y = panel.Max.Y

	if view.Feature != "" {
		y += px(gap)
		textW := font.MeasureString(featureFace, view.Feature).Ceil()
		pillW := min(textW+2*px(pillPadX), inner)
		pill := image.Rect(px(padding), y, px(padding)+pillW, y+px(pillHeight))
		draw.Draw(canvas, pill, image.NewUniform(pillColor), image.Point{}, draw.Src)
		drawText(canvas, featureFace, view.Feature, pill.Min.X+px(pillPadX), pill.Min.Y, pill.Dy())
		y = pill.Max.Y
	}

	if len(lines) > 0 {
		y += px(gap)
		for _, line := range lines {
			drawText(canvas, promptFace, line, px(padding), y, px(promptLeadPx))
			y += px(promptLeadPx)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", domain.ErrCaptureFailed, err)
	}
	r.logger.Debug("capture rendered",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

func (r *Raster) face(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72 * r.opts.PixelRatio,
		Hinting: font.HintingFull,
	})
}

// drawText draws s vertically centred in a band of height h starting at top.
func drawText(dst draw.Image, face font.Face, s string, x, top, h int) {
	m := face.Metrics()
	textH := (m.Ascent + m.Descent).Ceil()
	baseline := top + (h-textH)/2 + m.Ascent.Ceil()
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// wrap breaks s into lines no wider than maxW pixels. A single word wider
// than maxW gets a line of its own.
func wrap(face font.Face, s string, maxW int) []string {
	var (
		lines []string
		cur   string
	)
	for _, word := range strings.Fields(s) {
		next := word
		if cur != "" {
			next = cur + " " + word
		}
		if cur != "" && font.MeasureString(face, next).Ceil() > maxW {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// cover scales src to fill r, cropping the centre to keep its aspect ratio.
func cover(dst draw.Image, r image.Rectangle, src image.Image) {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	dw, dh := r.Dx(), r.Dy()
	if sw == 0 || sh == 0 || dw == 0 || dh == 0 {
		return
	}
	crop := sb
	if sw*dh > sh*dw {
		w := sh * dw / dh
		x0 := sb.Min.X + (sw-w)/2
		crop = image.Rect(x0, sb.Min.Y, x0+w, sb.Max.Y)
	} else {
		h := sw * dh / dw
		y0 := sb.Min.Y + (sh-h)/2
		crop = image.Rect(sb.Min.X, y0, sb.Max.X, y0+h)
	}
	draw.CatmullRom.Scale(dst, r, src, crop, draw.Src, nil)
}

// gradient fills r with a vertical blend from top to bottom.
func gradient(dst *image.RGBA, r image.Rectangle, top, bottom color.RGBA) {
	h := r.Dy()
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		c := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 0xff,
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetRGBA(x, r.Min.Y+y, c)
		}
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

var _ domain.Capturer = (*Raster)(nil)
