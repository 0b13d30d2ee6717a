package models

import (
	"testing"
)

func TestModelOutput_ChosenCandidate_FirstCandidate(t *testing.T) {
	output := &ModelOutput{
		Candidates: []Candidate{
			{Text: "First candidate", FinishReason: "STOP"},
			{Text: "Second candidate"},
		},
		Chosen: 0,
	}

	candidate := output.ChosenCandidate()
	if candidate == nil {
		t.Fatal("ChosenCandidate() returned nil")
	}

	if candidate.Text != "First candidate" {
		t.Errorf("ChosenCandidate().Text = %s, want 'First candidate'", candidate.Text)
	}
	if output.FinishReason() != "STOP" {
		t.Errorf("FinishReason() = %s, want STOP", output.FinishReason())
	}
}

func TestModelOutput_ChosenCandidate_SecondCandidate(t *testing.T) {
	output := &ModelOutput{
		Candidates: []Candidate{
			{Text: "First candidate"},
			{Text: "Second candidate"},
		},
		Chosen: 1,
	}

	if output.Text() != "Second candidate" {
		t.Errorf("Text() = %s, want 'Second candidate'", output.Text())
	}
}

func TestModelOutput_ChosenCandidate_OutOfRange(t *testing.T) {
	output := &ModelOutput{
		Candidates: []Candidate{{Text: "only"}},
		Chosen:     5,
	}

	if output.Text() != "only" {
		t.Errorf("Text() = %s, want 'only'", output.Text())
	}
}

func TestModelOutput_Empty(t *testing.T) {
	output := &ModelOutput{}

	if output.ChosenCandidate() != nil {
		t.Error("ChosenCandidate() should be nil with no candidates")
	}
	if output.Text() != "" {
		t.Errorf("Text() = %q, want empty", output.Text())
	}
	if output.FinishReason() != "" {
		t.Errorf("FinishReason() = %q, want empty", output.FinishReason())
	}

	var nilOutput *ModelOutput
	if nilOutput.Text() != "" {
		t.Error("Text() on nil output should be empty")
	}
}
