// Package generation implements the AI caption and title-suggestion
// contracts. Both operations absorb every provider failure into fixed
// fallback text; nothing in this package returns an error to its caller.
package generation

import (
	"context"
	"fmt"
	"log"
	"strings"
)

const (
	// Returned when the provider call itself fails (transport, auth,
	// non-2xx). Distinct from the empty-response fallback below.
	CaptionFailureFallback = "Beautiful memories"
	// Returned when the provider answers but the text is empty after
	// trimming.
	CaptionEmptyFallback = "A moment to remember"

	defaultStyle = "modern & direkt"

	// TitleCount is the number of suggestions every call produces, no
	// matter what the provider does.
	TitleCount = 3
)

// Provider is the opaque text/image-to-text boundary. The gemini package
// supplies the production implementation.
type Provider interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateFromImage(ctx context.Context, image []byte, mimeType, instruction string) (string, error)
}

type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Caption asks the provider for a short heartwarming caption for the photo
// in the given writing style. Results are not cached; calling twice with the
// same photo may yield different text.
func (s *Service) Caption(ctx context.Context, image []byte, mimeType, style string) string {
	if style == "" {
		style = defaultStyle
	}
	instruction := fmt.Sprintf("Generate a short, heartwarming 5-word caption for this photo that would look great in a physical photo book. "+
		"Tone/Style: %s. "+
		"Use German if the image looks like it's from Germany, otherwise English. "+
		"Return only the caption text.", style)

	text, err := s.provider.GenerateFromImage(ctx, image, mimeType, instruction)
	if err != nil {
		log.Printf("caption generation failed: %v", err)
		return CaptionFailureFallback
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return CaptionEmptyFallback
	}
	return text
}

// TitleSuggestions asks the provider for exactly three semicolon-separated
// German book titles and always returns exactly three non-empty strings.
// A provider failure and a malformed response use different fallback sets so
// the two failure modes stay observable.
func (s *Service) TitleSuggestions(ctx context.Context, recipient, recipientName, senderName string) []string {
	prompt := fmt.Sprintf("Generate 3 short, creative, and heartwarming titles for a photo book in German. "+
		"Recipient type: %s\n"+
		"Recipient name: %s\n"+
		"Sender name: %s\n"+
		"The titles should be emotional and modern. Return exactly 3 titles separated by a semicolon. Do not include numbers or bullet points.",
		recipient, recipientName, senderName)

	raw, err := s.provider.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("title generation failed: %v", err)
		return []string{
			"Unsere Geschichte",
			"Momente für die Ewigkeit",
			"Für " + recipientName,
		}
	}

	suggestions := parseTitles(raw)
	if len(suggestions) < TitleCount {
		// A partial result is discarded entirely rather than padded.
		return []string{
			"Abenteuer mit " + recipientName,
			"Unsere schönsten Momente",
			"Für dich, " + recipientName,
		}
	}
	return suggestions[:TitleCount]
}

// parseTitles splits a raw response on semicolons, trims each segment,
// strips a single pair of surrounding quote characters and drops segments
// that end up empty. Order is preserved.
func parseTitles(raw string) []string {
	parts := strings.Split(raw, ";")
	titles := make([]string, 0, len(parts))
	for _, p := range parts {
		p = stripQuotes(strings.TrimSpace(p))
		if p != "" {
			titles = append(titles, p)
		}
	}
	return titles
}

func stripQuotes(s string) string {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return s
}
