package server

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

type PromptsResponse struct {
	Prompts []string `json:"prompts"`
}

type FeaturesResponse struct {
	Features []string `json:"features"`
}

type ImagesResponse struct {
	Images []string `json:"images"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
