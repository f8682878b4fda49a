package article

// Record is the normalized article returned to the caller. ImageURL is
// always empty right after generation; the image step fills it later.
type Record struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	ImageURL string   `json:"imageUrl"`
}

// generateDTO is the request body for POST /generate-content.
// GenerateImage is accepted for forward compatibility and ignored: image
// generation is always a separate call.
type generateDTO struct {
	Topic         string `json:"topic"`
	GenerateImage bool   `json:"generateImage"`
}

// parsedArticle mirrors the JSON object the model is asked to emit.
// ImageDescription is parsed but deliberately dropped from the result.
type parsedArticle struct {
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Tags             []string `json:"tags"`
	ImageDescription string   `json:"imageDescription"`
}
