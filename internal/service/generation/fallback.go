package generation

import (
	"fmt"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

// FallbackSlides builds the five-slide presentation used when the language
// model path fails. It uses only its arguments and cannot fail.
func FallbackSlides(title, content, audience string) []domain.AIGeneratedSlide {
	audience = audienceOrDefault(audience)

	drafts := [...]struct {
		slot    string
		title   string
		content string
	}{
		{
			slot:  SlotHook,
			title: title,
			content: fmt.Sprintf("• Welcome to our presentation\n• Today we'll explore: %s\n• Designed for: %s",
				title, audience),
		},
		{
			slot:  SlotWhat,
			title: "What Are We Discussing?",
			content: fmt.Sprintf("• Core concept: %s...\n• Key definition and scope\n• Setting the foundation for understanding",
				truncate(content, 100)),
		},
		{
			slot:    SlotWhy,
			title:   "Why This Matters",
			content: fmt.Sprintf("• Relevant to %s\n• Addresses current challenges\n• Creates valuable opportunities", audience),
		},
		{
			slot:    SlotHow,
			title:   "How It Works",
			content: "• Step-by-step approach\n• Practical implementation\n• Clear action points",
		},
		{
			slot:    SlotConclusion,
			title:   "Next Steps",
			content: "• Key takeaways from today\n• Immediate actions you can take\n• How to move forward effectively",
		},
	}

	slides := make([]domain.AIGeneratedSlide, 0, len(drafts))
	for _, d := range drafts {
		slides = append(slides, newSlide(d.slot, d.title, d.content))
	}
	return slides
}
