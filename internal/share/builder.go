package share

import (
	"fmt"
	"net/url"
	"strings"

	"cardreveal/internal/domain"
)

const (
	// DefaultText is the message pre-filled into every share.
	DefaultText = "Getting inspired using the prompt generator, try it out and use the prompts on daisy.so"
	// DefaultGenericURL is shared when no personalised preview exists.
	DefaultGenericURL = "https://app.daisy.so/create"
)

// Builder composes platform share links.
type Builder struct {
	// PublicURL is the origin serving the /share/{id} preview page.
	PublicURL string
	// GenericURL is used when there is no uploaded image.
	GenericURL string
	// Text is the pre-filled message.
	Text string
}

// New returns a Builder with the given preview origin and default text and
// generic destination.
func New(publicURL string) *Builder {
	return &Builder{
		PublicURL:  strings.TrimRight(publicURL, "/"),
		GenericURL: DefaultGenericURL,
		Text:       DefaultText,
	}
}

// Link returns the page a share points at: the preview page for imageURL, or
// the generic destination when imageURL is empty or no preview origin is
// configured.
func (b *Builder) Link(imageURL string) string {
	if imageURL == "" || b.PublicURL == "" {
		return b.genericURL()
	}
	return PreviewPath(b.PublicURL, imageURL)
}

// URL returns the fully encoded share URL for platform.
//
// Telegram gets the link appended to the text body because its unfurler does
// not reliably resolve a separate url parameter.
func (b *Builder) URL(platform domain.Platform, imageURL string) string {
	link := b.Link(imageURL)
	text := b.text()

	switch platform {
	case domain.PlatformX:
		return "https://x.com/intent/tweet?text=" + EncodeComponent(text) + "&url=" + EncodeComponent(link)
	case domain.PlatformFacebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + EncodeComponent(link) + "&quote=" + EncodeComponent(text)
	case domain.PlatformTelegram:
		return "https://t.me/share/url?text=" + EncodeComponent(text+" "+link)
	default:
		// Unknown platforms degrade to the bare link rather than failing.
		return link
	}
}

// All returns share URLs for every supported platform.
func (b *Builder) All(imageURL string) map[domain.Platform]string {
	out := make(map[domain.Platform]string, len(domain.Platforms))
	for _, p := range domain.Platforms {
		out[p] = b.URL(p, imageURL)
	}
	return out
}

func (b *Builder) text() string {
	if b.Text == "" {
		return DefaultText
	}
	return b.Text
}

func (b *Builder) genericURL() string {
	if b.GenericURL == "" {
		return DefaultGenericURL
	}
	return b.GenericURL
}

// PreviewPath returns origin/share/{id} where id is the encoded image URL.
func PreviewPath(origin, imageURL string) string {
	return strings.TrimRight(origin, "/") + "/share/" + EncodeComponent(imageURL)
}

// EncodeComponent escapes s for use as a single URL component; spaces become
// %20 rather than '+'.
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ParsePlatform maps user input to a Platform.
func ParsePlatform(s string) (domain.Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "twitter":
		return domain.PlatformX, nil
	case "facebook", "fb":
		return domain.PlatformFacebook, nil
	case "telegram", "tg":
		return domain.PlatformTelegram, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownPlatform, s)
	}
}
