// Package gemini implements question answering and token counting using the
// Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/fileqa"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is specified.
const DefaultModel = "gemini-2.5-flash"

// Ensure Answerer implements fileqa.Answerer at compile time.
var _ fileqa.Answerer = (*Answerer)(nil)

// Answerer implements fileqa.Answerer using Google Gemini.
type Answerer struct {
	client *genai.Client
	model  string
}

// NewAnswerer creates a new Answerer. An empty model selects DefaultModel.
func NewAnswerer(client *genai.Client, model string) *Answerer {
	if model == "" {
		model = DefaultModel
	}
	return &Answerer{client: client, model: model}
}

// Answer answers a question using the supplied file content as context.
func (a *Answerer) Answer(ctx context.Context, question, content string) (string, error) {
	if question == "" {
		return "", fileqa.Errorf(fileqa.EINVALID, "question required")
	}
	if content == "" {
		return "", fileqa.Errorf(fileqa.EINVALID, "content required")
	}

	prompt := BuildUserPrompt(question, content)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", classify(err)
	}
	if result == nil {
		return "", fileqa.Errorf(fileqa.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", fileqa.Errorf(fileqa.EREFUSED, "model returned no answer")
	}

	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about the user's files. Answer based only on the file content provided. If the answer is not in the files, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing file content and question.
func BuildUserPrompt(question, content string) string {
	var sb strings.Builder
	sb.WriteString(content)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}

// classify maps Gemini API failures onto application error codes so the
// dispatcher can compose them into user-visible replies.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fileqa.Errorf(fileqa.EUNAUTHORIZED, "API key rejected: %s", apiErr.Message)
		case http.StatusTooManyRequests:
			return fileqa.Errorf(fileqa.ERATELIMITED, "rate limited by the API: %s", apiErr.Message)
		default:
			if apiErr.Code >= 500 {
				return fileqa.Errorf(fileqa.EUNAVAILABLE, "API unavailable: %s", apiErr.Message)
			}
		}
		return fileqa.Errorf(fileqa.EINTERNAL, "API error: %s", apiErr.Message)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fileqa.Errorf(fileqa.ETIMEOUT, "request timed out")
	}
	return fileqa.Errorf(fileqa.EUNAVAILABLE, "request failed: %v", err)
}
