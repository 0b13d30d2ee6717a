// Package api provides the model client and conversation session for geminichat.
package api

// GJSON paths for extracting values from generateContent responses
const (
	PathCandidates   = "candidates"
	PathCandParts    = "content.parts"
	PathPartText     = "text"
	PathCandFinish   = "finishReason"
	PathBlockReason  = "promptFeedback.blockReason"
	PathPromptTokens = "usageMetadata.promptTokenCount"
	PathOutputTokens = "usageMetadata.candidatesTokenCount"
	PathTotalTokens  = "usageMetadata.totalTokenCount"
	PathModelVersion = "modelVersion"
	PathErrorMessage = "error.message"
	PathErrorStatus  = "error.status"
	PathErrorReasons = "error.details.#.reason"
)

// Finish reasons that mean the reply was withheld by content safety
var safetyFinishReasons = map[string]bool{
	"SAFETY":             true,
	"PROHIBITED_CONTENT": true,
	"BLOCKLIST":          true,
	"SPII":               true,
	"RECITATION":         true,
}
