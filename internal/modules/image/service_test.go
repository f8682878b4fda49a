package image

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	appcfg "github.com/cloudgen/core/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubImageGenerator struct {
	url string
	err error

	gotPrompt string
}

func (s *stubImageGenerator) GenerateImage(_ context.Context, prompt string) (string, error) {
	s.gotPrompt = prompt
	return s.url, s.err
}

func TestBuildImagePrompt(t *testing.T) {
	prompt := buildImagePrompt("Scaling with Lambda", "AWS Lambda", []string{"AWS", "Serverless"})
	assert.Contains(t, prompt, "AWS Lambda")
	assert.Contains(t, prompt, "Scaling with Lambda")
	assert.Contains(t, prompt, "AWS, Serverless")
	assert.Contains(t, prompt, "blue and white color scheme")
}

func TestBuildImagePromptTagsFallBackToTopic(t *testing.T) {
	prompt := buildImagePrompt("Title", "Kubernetes", nil)
	assert.Contains(t, prompt, "Related technologies: Kubernetes")
}

func TestGenerateDelegatesPrompt(t *testing.T) {
	gen := &stubImageGenerator{url: "https://img.example/1.png"}
	svc := NewService(gen, appcfg.FetchConfig{TimeoutSeconds: 5}, nil)

	url, err := svc.Generate(context.Background(), "Title", "Topic", []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/1.png", url)
	assert.Contains(t, gen.gotPrompt, "Topic")
}

func TestFetchSuccess(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	svc := NewService(nil, appcfg.FetchConfig{TimeoutSeconds: 5}, nil)
	fetched, err := svc.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	defer fetched.Body.Close()

	assert.Equal(t, "image/png", fetched.ContentType)
	body, err := io.ReadAll(fetched.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, body)
}

func TestFetchDefaultsContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil // suppress implicit detection
		_, _ = w.Write([]byte("data"))
	}))
	defer srv.Close()

	svc := NewService(nil, appcfg.FetchConfig{TimeoutSeconds: 5}, nil)
	fetched, err := svc.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	defer fetched.Body.Close()

	assert.Equal(t, "image/png", fetched.ContentType)
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	svc := NewService(nil, appcfg.FetchConfig{TimeoutSeconds: 5}, nil)
	_, err := svc.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestAttachmentFilename(t *testing.T) {
	tests := []struct {
		title       string
		contentType string
		want        string
	}{
		{"AWS Lambda!!", "image/png", "AWS_Lambda__.png"},
		{"", "image/png", "cloud-image.png"},
		{"", "", "cloud-image.png"},
		{"Kubernetes 101", "image/jpeg", "Kubernetes_101.jpg"},
		{"Сэдэв", "image/png", "_____.png"},
		{"a", "image/webp; charset=binary", "a.webp"},
		{"a", "application/octet-stream", "a.png"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, AttachmentFilename(tc.title, tc.contentType),
			"title=%q contentType=%q", tc.title, tc.contentType)
	}
}
