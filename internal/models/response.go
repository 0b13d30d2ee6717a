package models

// Candidate is a single generated reply
type Candidate struct {
	Text         string
	FinishReason string
}

// UsageMetadata reports token accounting for one call
type UsageMetadata struct {
	PromptTokens int
	OutputTokens int
	TotalTokens  int
}

// ModelOutput is the parsed result of one generateContent call
type ModelOutput struct {
	Candidates  []Candidate
	Chosen      int    // Index of selected candidate
	BlockReason string // Set when the prompt itself was blocked
	ModelName   string
	Usage       UsageMetadata
}

// Text returns the chosen candidate's text
func (m *ModelOutput) Text() string {
	if c := m.ChosenCandidate(); c != nil {
		return c.Text
	}
	return ""
}

// FinishReason returns the chosen candidate's finish reason
func (m *ModelOutput) FinishReason() string {
	if c := m.ChosenCandidate(); c != nil {
		return c.FinishReason
	}
	return ""
}

// ChosenCandidate returns a pointer to the chosen candidate
func (m *ModelOutput) ChosenCandidate() *Candidate {
	if m == nil || len(m.Candidates) == 0 {
		return nil
	}
	if m.Chosen < 0 || m.Chosen >= len(m.Candidates) {
		return &m.Candidates[0]
	}
	return &m.Candidates[m.Chosen]
}
