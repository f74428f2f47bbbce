package server

import (
	"bytes"
	"html/template"

	"cardreveal/internal/share"
)

const (
	PreviewTitle       = "Card Prompt Maker"
	PreviewDescription = share.DefaultText
)

var previewPage = template.Must(template.New("preview").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}">
<meta property="og:type" content="website">
<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
<meta property="og:image" content="{{.Image}}">
<meta property="og:url" content="{{.PageURL}}">
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:title" content="{{.Title}}">
<meta name="twitter:description" content="{{.Description}}">
<meta name="twitter:image" content="{{.Image}}">
</head>
<body>
<img src="{{.Image}}" alt="{{.Title}}">
</body>
</html>
`))

type previewData struct {
	Title       string
	Description string
	Image       string
	PageURL     string
}

func renderPreview(d previewData) ([]byte, error) {
	var buf bytes.Buffer
	if err := previewPage.Execute(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
