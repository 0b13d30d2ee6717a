package api

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"

	apierrors "github.com/diogo/geminichat/internal/errors"
	"github.com/diogo/geminichat/internal/models"
)

const (
	defaultArkBaseURL = "https://ark.cn-beijing.volces.com/api/v3"
	defaultArkRegion  = "cn-beijing"
)

// ArkClient is a Generator backed by an eino chat model.
// Safety settings have no equivalent there and are not sent.
type ArkClient struct {
	chatModel model.BaseChatModel
	logger    *zap.Logger
}

// NewArkClient creates an ArkClient for the Volcengine Ark service
func NewArkClient(ctx context.Context, apiKey, modelName, baseURL string, logger *zap.Logger) (*ArkClient, error) {
	if baseURL == "" {
		baseURL = defaultArkBaseURL
	}

	chatModel, err := ark.NewChatModel(ctx, &ark.ChatModelConfig{
		BaseURL: baseURL,
		Region:  defaultArkRegion,
		APIKey:  apiKey,
		Model:   modelName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ark chat model: %w", err)
	}

	return NewArkClientWithModel(chatModel, logger), nil
}

// NewArkClientWithModel wraps an existing eino chat model
func NewArkClientWithModel(chatModel model.BaseChatModel, logger *zap.Logger) *ArkClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArkClient{chatModel: chatModel, logger: logger}
}

// toSchemaMessages converts turns to eino messages, with the system
// instruction first when set
func toSchemaMessages(turns []models.Turn, systemInstruction string) []*schema.Message {
	messages := make([]*schema.Message, 0, len(turns)+1)
	if systemInstruction != "" {
		messages = append(messages, schema.SystemMessage(systemInstruction))
	}
	for _, t := range turns {
		if t.Role == models.RoleAssistant {
			messages = append(messages, schema.AssistantMessage(t.Text, nil))
		} else {
			messages = append(messages, schema.UserMessage(t.Text))
		}
	}
	return messages
}

// generationOptions maps the generation config onto eino call options.
// eino has no top-k option.
func generationOptions(gen models.GenerationConfig) []model.Option {
	var opts []model.Option
	if gen.Temperature != nil {
		opts = append(opts, model.WithTemperature(float32(*gen.Temperature)))
	}
	if gen.TopP != nil {
		opts = append(opts, model.WithTopP(float32(*gen.TopP)))
	}
	if gen.MaxOutputTokens != nil {
		opts = append(opts, model.WithMaxTokens(*gen.MaxOutputTokens))
	}
	return opts
}

// GenerateContent implements Generator
func (c *ArkClient) GenerateContent(ctx context.Context, turns []models.Turn, cfg models.ModelConfig) (*models.ModelOutput, error) {
	if len(turns) == 0 {
		return nil, fmt.Errorf("conversation is empty")
	}

	messages := toSchemaMessages(turns, cfg.SystemInstruction)
	c.logger.Debug("sending ark generate", zap.Int("messages", len(messages)))

	resp, err := c.chatModel.Generate(ctx, messages, generationOptions(cfg.Generation)...)
	if err != nil {
		if isContextError(err) || ctx.Err() != nil {
			return nil, apierrors.NewRemoteCallError(apierrors.KindTimeout, "request cancelled or timed out", err)
		}
		return nil, apierrors.NewRemoteCallError(apierrors.KindAPI, "", err)
	}
	if resp == nil || resp.Content == "" {
		return nil, apierrors.NewParseError("ark returned an empty reply")
	}

	output := &models.ModelOutput{
		ModelName:  cfg.Model,
		Candidates: []models.Candidate{{Text: resp.Content}},
	}
	if meta := resp.ResponseMeta; meta != nil {
		output.Candidates[0].FinishReason = meta.FinishReason
		if meta.Usage != nil {
			output.Usage = models.UsageMetadata{
				PromptTokens: meta.Usage.PromptTokens,
				OutputTokens: meta.Usage.CompletionTokens,
				TotalTokens:  meta.Usage.TotalTokens,
			}
		}
	}

	return output, nil
}
