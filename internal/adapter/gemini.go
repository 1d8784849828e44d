// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-deed-keeper/internal/config"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/internal/utils"
	"github.com/MKhiriev/go-deed-keeper/models"
)

const (
	defaultGeminiModel = "gemini-1.5-flash"
	defaultMimeType    = "image/jpeg"

	geminiRetries   = 2
	geminiRetryWait = 500 * time.Millisecond

	// apiKeyHeader carries the key so it never shows up in a request URL.
	apiKeyHeader = "x-goog-api-key"
)

const deedPrompt = `
Extract fields from the attached Malaysian "Akta Hakmilik Strata" deed scan and return ONLY JSON.
Keys (exact spelling):
- NoHakmilik
- NoBangunan
- NoTingkat
- NoPetak
- Negeri
- Daerah
- Bandar (if the document shows "BANDAR/PEKAN/MUKIM", return the BANDAR value)

Rules:
- Output must be valid JSON with exactly these keys.
- Preserve capitalization and numbers exactly as seen.
- If a field is missing, return an empty string.
`

// deedKeys is the fixed key order of the extraction schema.
var deedKeys = []string{"NoHakmilik", "NoBangunan", "NoTingkat", "NoPetak", "Negeri", "Daerah", "Bandar"}

type geminiExtractor struct {
	client *utils.HTTPClient
	apiKey string
	model  string

	logger *logger.Logger
}

// NewGeminiExtractor constructs a [DeedExtractor] backed by the Gemini
// generateContent REST endpoint. The base URL is normalised the same way for
// every upstream; an empty model falls back to gemini-1.5-flash.
//
// An empty GeminiAPIKey is not an error: the returned extractor answers every
// call with [ErrExtractorNotConfigured] so that manual field entry keeps
// working without credentials.
//
// Returns an error if cfg.GeminiBaseURL cannot be parsed as a URL.
func NewGeminiExtractor(cfg config.Adapter, log *logger.Logger) (DeedExtractor, error) {
	baseURL, err := normalizeBaseURL(cfg.GeminiBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gemini base url: %w", err)
	}

	model := strings.TrimSpace(cfg.GeminiModel)
	if model == "" {
		model = defaultGeminiModel
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.RequestTimeout),
		utils.WithRetries(geminiRetries, geminiRetryWait),
	)

	return &geminiExtractor{
		client: client,
		apiKey: strings.TrimSpace(cfg.GeminiAPIKey),
		model:  model,
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ExtractDeed implements [DeedExtractor]. It POSTs the prompt and the inline
// image to {base}/v1beta/models/{model}:generateContent, reads the text of the
// first candidate and decodes it loosely; when the text holds no JSON object
// the labelled-line fallback is used instead.
func (g *geminiExtractor) ExtractDeed(ctx context.Context, doc models.Document) (models.DeedFields, error) {
	if g.apiKey == "" {
		return models.DeedFields{}, ErrExtractorNotConfigured
	}
	if len(doc.Content) == 0 {
		return models.DeedFields{}, ErrEmptyDocument
	}

	log := logger.FromContext(ctx)

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(apiKeyHeader, g.apiKey).
		SetPathParam("model", g.model).
		SetBody(newGenerateContentRequest(doc)).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		log.Err(err).Str("func", "geminiExtractor.ExtractDeed").Msg("generateContent request failed")
		return models.DeedFields{}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "geminiExtractor.ExtractDeed").Int("status", resp.StatusCode()).Msg("gemini returned an error")
		return models.DeedFields{}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	var out generateContentResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		log.Err(err).Str("func", "geminiExtractor.ExtractDeed").Msg("error decoding gemini response")
		return models.DeedFields{}, fmt.Errorf("%w: decode response: %w", ErrExtractionFailed, err)
	}

	text := out.text()
	fields, ok := parseDeedJSON(text)
	if !ok {
		log.Warn().Str("func", "geminiExtractor.ExtractDeed").Msg("gemini answer is not JSON, using labelled-line fallback")
		fields = fallbackExtract(text)
	}

	if fields == (models.DeedFields{}) {
		return models.DeedFields{}, fmt.Errorf("%w: no deed fields recognised", ErrExtractionFailed)
	}

	return fields, nil
}

// ── wire types ──────────────────────────────────────────────────────────────

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   responseSchema `json:"responseSchema"`
}

type responseSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]responseSchema `json:"properties,omitempty"`
	Required   []string                  `json:"required,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// text concatenates the text parts of the first candidate.
func (r generateContentResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

func newGenerateContentRequest(doc models.Document) generateContentRequest {
	mimeType := strings.TrimSpace(doc.MimeType)
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	properties := make(map[string]responseSchema, len(deedKeys))
	for _, k := range deedKeys {
		properties[k] = responseSchema{Type: "STRING"}
	}

	return generateContentRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{Text: deedPrompt},
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(doc.Content),
				}},
			},
		}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: responseSchema{
				Type:       "OBJECT",
				Properties: properties,
				Required:   deedKeys,
			},
		},
	}
}
