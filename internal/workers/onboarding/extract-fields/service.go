// internal/workers/onboarding/extract-fields/service.go
package extractfields

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	apphttp "onboarding-workers/internal/common/http"
	"onboarding-workers/internal/common/validation"
	"onboarding-workers/internal/models"
)

// ExtractionService is the opaque OCR/ML backend.
type ExtractionService interface {
	Process(ctx context.Context, content []byte, mimeType, processorName string) ([]Entity, error)
}

var processResponseSchema = validation.MustCompile("extraction-process-response", `{
  "type": "object",
  "required": ["document"],
  "properties": {
    "document": {
      "type": "object",
      "properties": {
        "entities": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["type"],
            "properties": {
              "type": {"type": "string"},
              "mentionText": {"type": "string"},
              "confidence": {"type": "number"}
            }
          }
        }
      }
    }
  }
}`)

type processRequest struct {
	RawDocument rawDocument `json:"rawDocument"`
}

type rawDocument struct {
	Content  []byte `json:"content"`
	MimeType string `json:"mimeType"`
}

type processResponse struct {
	Document struct {
		Entities []Entity `json:"entities"`
	} `json:"document"`
}

// HTTPExtractionService calls a Document AI style REST endpoint:
// POST {baseURL}/v1/{processorName}:process.
type HTTPExtractionService struct {
	baseURL string
	client  *apphttp.Client
}

func NewHTTPExtractionService(cfg *Config) *HTTPExtractionService {
	client := apphttp.NewClient(cfg.Timeout)
	if cfg.APIKey != "" {
		client = client.WithHeader("X-Goog-Api-Key", cfg.APIKey)
	}
	return &HTTPExtractionService{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  client,
	}
}

func (s *HTTPExtractionService) Process(ctx context.Context, content []byte, mimeType, processorName string) ([]Entity, error) {
	url := fmt.Sprintf("%s/v1/%s:process", s.baseURL, processorName)

	body, err := s.client.PostJSON(ctx, url, processRequest{
		RawDocument: rawDocument{Content: content, MimeType: mimeType},
	})
	if err != nil {
		return nil, err
	}

	result, err := processResponseSchema.ValidateJSON(body)
	if err != nil {
		return nil, fmt.Errorf("malformed extraction response: %w", err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("unexpected extraction response: %s", strings.Join(result.GetErrorMessages(), "; "))
	}

	var resp processResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode extraction response: %w", err)
	}
	return resp.Document.Entities, nil
}

// ProcessorRouter picks the backend processor for each document kind.
type ProcessorRouter struct {
	projectID        string
	location         string
	processors       map[string]string
	defaultProcessor string
}

func NewProcessorRouter(cfg *Config) *ProcessorRouter {
	return &ProcessorRouter{
		projectID:        cfg.ProjectID,
		location:         cfg.Location,
		processors:       cfg.Processors,
		defaultProcessor: cfg.DefaultProcessor,
	}
}

// ProcessorName returns projects/{p}/locations/{l}/processors/{id}, falling
// back to the default processor when kind has none configured.
func (r *ProcessorRouter) ProcessorName(kind models.DocumentKind) string {
	id := r.processors[string(kind)]
	if id == "" {
		id = r.defaultProcessor
	}
	return fmt.Sprintf("projects/%s/locations/%s/processors/%s", r.projectID, r.location, id)
}
