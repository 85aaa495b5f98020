// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// GeminiService implements adapter.CategorySuggester using Google Gemini.
// It is only consulted during bulk import for rows whose category is not a
// member of the fixed set.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestCategory asks the model to pick one category from the fixed set
// matching the transaction type.
func (s *GeminiService) SuggestCategory(ctx context.Context, description string, transactionType entity.TransactionType) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(description, transactionType)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	category, err := s.parseResponse(resp, transactionType)
	if err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return category, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(description string, transactionType entity.TransactionType) string {
	var sb strings.Builder

	sb.WriteString("Anda adalah asisten yang mengkategorikan transaksi keuangan pribadi di Indonesia.\n")
	sb.WriteString("Pilih SATU kategori yang paling cocok untuk deskripsi transaksi berikut.\n\n")
	sb.WriteString("Kategori yang tersedia: ")
	sb.WriteString(strings.Join(entity.CategoriesForType(transactionType), ", "))
	sb.WriteString("\n\nDeskripsi transaksi: ")
	sb.WriteString(description)
	sb.WriteString("\n\nJawab hanya dengan JSON dalam format: {\"category\": \"<nama kategori>\"}\n")
	sb.WriteString("Kategori harus salah satu dari daftar di atas, ditulis persis sama.\n")

	return sb.String()
}

// parseResponse extracts the suggested category from the model output and
// verifies it belongs to the fixed set.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse, transactionType entity.TransactionType) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	var payload struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal([]byte(text.String()), &payload); err != nil {
		return "", fmt.Errorf("unexpected model output: %w", err)
	}

	if !entity.ValidCategory(transactionType, payload.Category) {
		return "", fmt.Errorf("model suggested unknown category %q", payload.Category)
	}
	return payload.Category, nil
}

var _ adapter.CategorySuggester = (*GeminiService)(nil)
