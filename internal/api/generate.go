package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	apierrors "github.com/diogo/geminichat/internal/errors"
	"github.com/diogo/geminichat/internal/models"
)

// maxResponseBytes caps how much of a response body is read
const maxResponseBytes = 8 << 20

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents          []content                `json:"contents"`
	SystemInstruction *content                 `json:"systemInstruction,omitempty"`
	GenerationConfig  *models.GenerationConfig `json:"generationConfig,omitempty"`
	SafetySettings    []models.SafetySetting   `json:"safetySettings,omitempty"`
}

// buildPayload creates the JSON body for a generateContent request
func buildPayload(turns []models.Turn, cfg models.ModelConfig) ([]byte, error) {
	if len(turns) == 0 {
		return nil, fmt.Errorf("conversation is empty")
	}

	req := generateRequest{
		Contents:       make([]content, 0, len(turns)),
		SafetySettings: cfg.Safety,
	}

	for _, t := range turns {
		req.Contents = append(req.Contents, content{
			Role:  t.Role.WireName(),
			Parts: []part{{Text: t.Text}},
		})
	}

	gen := cfg.Generation
	if gen.Temperature != nil || gen.TopP != nil || gen.TopK != nil || gen.MaxOutputTokens != nil {
		req.GenerationConfig = &gen
	}

	if cfg.SystemInstruction != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: cfg.SystemInstruction}}}
	}

	return json.Marshal(req)
}

// GenerateContent sends the conversation to Gemini and returns the reply
func (c *GeminiClient) GenerateContent(ctx context.Context, turns []models.Turn, cfg models.ModelConfig) (*models.ModelOutput, error) {
	if c.IsClosed() {
		return nil, apierrors.NewRemoteCallError(apierrors.KindUnknown, "", apierrors.ErrClientClosed)
	}

	model := cfg.Model
	if model == "" {
		model = models.DefaultModel
	}
	endpoint := c.endpointFor(model)

	payload, err := buildPayload(turns, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}
	req.Header.Set(models.APIKeyHeader, c.apiKey)

	c.logger.Debug("sending generateContent",
		zap.String("model", model),
		zap.Int("turns", len(turns)),
		zap.Int("payload_bytes", len(payload)),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &apierrors.RemoteCallError{
				Kind:     apierrors.KindTimeout,
				Endpoint: endpoint,
				Message:  "request cancelled or timed out",
				Err:      ctxErr,
			}
		}
		return nil, apierrors.NewNetworkError(endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apierrors.NewNetworkError(endpoint, fmt.Errorf("failed to read response: %w", err))
	}

	c.logger.Debug("generateContent response",
		zap.Int("status", resp.StatusCode),
		zap.Int("body_bytes", len(body)),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode, endpoint, body)
	}

	return parseResponse(body, model)
}

// statusError builds a RemoteCallError from a non-200 response, refining
// the kind with the API's own error status and reasons
func statusError(status int, endpoint string, body []byte) error {
	message := "generate content failed"
	if msg := gjson.GetBytes(body, PathErrorMessage); msg.Exists() && msg.String() != "" {
		message = msg.String()
	}

	err := apierrors.NewStatusError(status, endpoint, message, string(body))

	switch gjson.GetBytes(body, PathErrorStatus).String() {
	case "RESOURCE_EXHAUSTED":
		err.Kind = apierrors.KindQuota
	case "UNAUTHENTICATED", "PERMISSION_DENIED":
		err.Kind = apierrors.KindAuth
	case "DEADLINE_EXCEEDED":
		err.Kind = apierrors.KindTimeout
	}

	for _, reason := range gjson.GetBytes(body, PathErrorReasons).Array() {
		if reason.String() == "API_KEY_INVALID" {
			err.Kind = apierrors.KindAuth
		}
	}

	return err
}

// parseResponse parses a generateContent response body
func parseResponse(body []byte, modelName string) (*models.ModelOutput, error) {
	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("response is not valid JSON")
	}

	parsed := gjson.ParseBytes(body)

	if reason := parsed.Get(PathBlockReason); reason.Exists() && reason.String() != "" {
		return nil, apierrors.NewSafetyError("prompt blocked (" + reason.String() + ")")
	}

	output := &models.ModelOutput{
		ModelName: modelName,
		Usage: models.UsageMetadata{
			PromptTokens: int(parsed.Get(PathPromptTokens).Int()),
			OutputTokens: int(parsed.Get(PathOutputTokens).Int()),
			TotalTokens:  int(parsed.Get(PathTotalTokens).Int()),
		},
	}
	if v := parsed.Get(PathModelVersion); v.Exists() {
		output.ModelName = v.String()
	}

	parsed.Get(PathCandidates).ForEach(func(_, cand gjson.Result) bool {
		var text strings.Builder
		cand.Get(PathCandParts).ForEach(func(_, p gjson.Result) bool {
			text.WriteString(p.Get(PathPartText).String())
			return true
		})
		output.Candidates = append(output.Candidates, models.Candidate{
			Text:         text.String(),
			FinishReason: cand.Get(PathCandFinish).String(),
		})
		return true
	})

	if len(output.Candidates) == 0 {
		return nil, apierrors.NewParseError("no candidates in response")
	}

	if output.Text() == "" {
		finish := output.FinishReason()
		if safetyFinishReasons[finish] {
			return nil, apierrors.NewSafetyError("reply withheld (" + finish + ")")
		}
		return nil, apierrors.NewParseError(fmt.Sprintf("response contained no text (finish reason %q)", finish))
	}

	return output, nil
}

// isContextError reports whether err came from a cancelled or expired context
func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
