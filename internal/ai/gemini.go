package ai

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Fallback sentinels. Gagalnya AI tidak pernah menggagalkan simpan produk,
// deskripsi diganti teks tetap dan proses lanjut.
const (
	FallbackMissingKey  = "AI description unavailable (Missing API Key)."
	FallbackCallFailed  = "Failed to generate description."
	FallbackEmptyResult = "No description generated."
)

const defaultModel = "gemini-2.5-flash"

// DescriptionGenerator produces a short sales description for a product.
// Implementations must degrade to a fallback string, never an error.
type DescriptionGenerator interface {
	Generate(categoryName, brandName, productType string) string
}

type geminiClient struct {
	apiKey  string
	model   string
	timeout time.Duration
}

// NewGeminiClient reads GEMINI_API_KEY from the environment.
func NewGeminiClient() DescriptionGenerator {
	return &geminiClient{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   defaultModel,
		timeout: 15 * time.Second,
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (c *geminiClient) Generate(categoryName, brandName, productType string) string {
	if c.apiKey == "" {
		log.Println("Warning: no API key found for Gemini")
		return FallbackMissingKey
	}

	prompt := fmt.Sprintf(`Write a compelling, professional, and short sales description (max 2 sentences) for a product with the following details:
Category: %s
Brand: %s
Model/Type: %s

Focus on value and features suitable for this type of product.`, categoryName, brandName, productType)

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		c.model, c.apiKey,
	)

	agent := fiber.Post(url)
	agent.Timeout(c.timeout)
	agent.JSON(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})

	code, body, errs := agent.Bytes()
	if len(errs) > 0 || code != fiber.StatusOK {
		log.Printf("Gemini API error: status=%d errs=%v", code, errs)
		return FallbackCallFailed
	}

	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Printf("Gemini API error: invalid response: %v", err)
		return FallbackCallFailed
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return FallbackEmptyResult
	}

	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return FallbackEmptyResult
	}
	return text
}
