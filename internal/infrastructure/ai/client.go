package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"intern-match/internal/domain/vector"
)

// Client talks to the external AI service that turns text into embeddings
// and extracts structured resume data. The service is a black box; its
// internals (model, PDF parsing) are out of scope here.
type Client interface {
	GenerateEmbedding(ctx context.Context, text string) (vector.Vector, error)
	ExtractResumeData(ctx context.Context, text string) (ResumeData, error)
}

type ResumeData struct {
	Skills     []string `json:"skills"`
	Education  []string `json:"education"`
	Experience []string `json:"experience"`
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

type textRequest struct {
	Text string `json:"text"`
}

type embeddingResponse struct {
	Embedding  []float64 `json:"embedding"`
	Dimensions int       `json:"dimensions"`
}

// NewClient returns nil when baseURL is empty; callers treat a nil client as
// "AI service not configured" and store records without embeddings.
func NewClient(baseURL string, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

func (c *httpClient) GenerateEmbedding(ctx context.Context, text string) (vector.Vector, error) {
	if c == nil {
		return nil, errors.New("nil ai client")
	}

	var out embeddingResponse
	if err := c.postJSON(ctx, "/generate-text-embedding", textRequest{Text: text}, &out); err != nil {
		return nil, err
	}

	// A non-384 response is suspect but not rejected; downstream comparison
	// still enforces equal lengths.
	if len(out.Embedding) != vector.Dimensions && c.logger != nil {
		c.logger.Printf("[AI] unexpected embedding dimensions | got=%d want=%d", len(out.Embedding), vector.Dimensions)
	}
	return vector.Vector(out.Embedding), nil
}

func (c *httpClient) ExtractResumeData(ctx context.Context, text string) (ResumeData, error) {
	if c == nil {
		return ResumeData{}, errors.New("nil ai client")
	}

	var out ResumeData
	if err := c.postJSON(ctx, "/extract-resume-data", textRequest{Text: text}, &out); err != nil {
		return ResumeData{}, err
	}
	return out, nil
}

func (c *httpClient) postJSON(ctx context.Context, path string, in any, out any) error {
	if c.client == nil {
		return errors.New("nil http client")
	}
	endpoint := c.baseURL + path

	b, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		err := fmt.Errorf("ai service request failed: status=%d body=%s", resp.StatusCode, bodyStr)
		if c.logger != nil {
			c.logger.Printf("[AI] request error | endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, bodyStr)
		}
		return err
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

var _ Client = (*httpClient)(nil)
