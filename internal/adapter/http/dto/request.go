package dto

import (
	"time"

	"github.com/iho/quickledger/internal/usecase"
)

// ParseRequest represents a request to parse one utterance.
type ParseRequest struct {
	Text string     `json:"text"`
	At   *time.Time `json:"at,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *ParseRequest) ToUseCaseInput() usecase.ParseInput {
	return usecase.ParseInput{
		Text: r.Text,
		At:   r.At,
	}
}

// ParseBatchRequest represents a request to parse several utterances.
type ParseBatchRequest struct {
	Lines []string   `json:"lines"`
	At    *time.Time `json:"at,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *ParseBatchRequest) ToUseCaseInput() usecase.ParseBatchInput {
	return usecase.ParseBatchInput{
		Lines: r.Lines,
		At:    r.At,
	}
}
