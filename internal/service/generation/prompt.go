package generation

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/framework"
)

// DefaultAudience is used when a context profile has no target audience.
const DefaultAudience = "General audience"

// PromptConfig is the input of BuildPresentationPrompt.
type PromptConfig struct {
	ContentAngle framework.ContentAngle
	HookAngle    *framework.HookAngle
	Audience     string
}

// BuildPresentationPrompt returns the system instruction for the language model.
func BuildPresentationPrompt(cfg PromptConfig) string {
	var hook string
	if cfg.HookAngle != nil {
		hook = fmt.Sprintf("HOOK STYLE: %s\n%s\nExample approach: \"%s\"",
			cfg.HookAngle.Label, cfg.HookAngle.Description, cfg.HookAngle.Example)
	}

	var b strings.Builder
	b.WriteString("You are a presentation coach helping beginners structure their ideas logically. ")
	b.WriteString("Your goal is to transform their raw thoughts into a clear, logical flow that guides both ")
	b.WriteString("the presenter and audience through a journey of understanding.\n\n")

	fmt.Fprintf(&b, "CONTENT FRAMEWORK: %s\n%s\n", cfg.ContentAngle.Label, cfg.ContentAngle.Description)
	for _, c := range cfg.ContentAngle.Components {
		fmt.Fprintf(&b, "- %s: %s\n", c.Label, c.Description)
	}
	fmt.Fprintf(&b, "\n%s\n\n", hook)
	fmt.Fprintf(&b, "AUDIENCE: %s\n\n", cfg.Audience)

	b.WriteString(philosophy)
	return b.String()
}

const philosophy = `PRESENTATION PHILOSOPHY:
Help beginners think logically by creating a natural progression that answers:
1. What is this about? (Hook & Context)
2. Why should I care? (Relevance & Impact)
3. How does it work? (Core Process/Solution)
4. What's next? (Action & Conclusion)

SLIDE REQUIREMENTS:
- Use simple, short sentences (max 2 lines per bullet point)
- Create smooth transitions between ideas
- Each main concept gets its own slide
- Help the presenter understand what flows naturally next
- Focus on logical progression, not overwhelming detail

CONTENT STYLE:
- Bullet points work better than paragraphs
- Maximum 3-4 bullets per slide
- Each bullet should be scannable in 3 seconds
- Use action-oriented language
- Include brief transition phrases to connect slides

STRUCTURE LOGIC:
The flow should feel like a conversation where each slide naturally leads to the next, helping beginners present with confidence because the logic is clear.`

// BuildUserPrompt returns the user instruction wrapping the brainstorm text.
// The JSON template names exactly the keys parsePresentation requires.
func BuildUserPrompt(brainstormContent string) string {
	return fmt.Sprintf(`Transform this content into a logical presentation structure:

%s

Create exactly 5 slides that follow this logical progression:

1. HOOK SLIDE - Opening that captures attention and sets context
2. WHAT SLIDE - Define the main concept/problem clearly
3. WHY SLIDE - Explain why this matters to the audience
4. HOW SLIDE - Show the solution/process/method
5. CONCLUSION SLIDE - Wrap up with clear next steps

Return as JSON:
%s

CONTENT GUIDELINES:
- Keep each bullet point under 12 words
- Use active voice and strong verbs
- Include one subtle transition hint per slide
- Make it scannable and presenter-friendly
- Help beginners feel confident about what comes next`, brainstormContent, ReplyTemplate)
}

// ReplyTemplate is the JSON shape the model is asked to return.
const ReplyTemplate = `{
  "hookSlide": {
    "title": "string (engaging, sets the stage)",
    "content": "string (2-3 short bullet points, includes transition to next slide)"
  },
  "whatSlide": {
    "title": "string (clear definition/explanation)",
    "content": "string (2-3 short bullet points, defines the core concept)"
  },
  "whySlide": {
    "title": "string (importance/relevance)",
    "content": "string (2-3 short bullet points, explains why it matters)"
  },
  "howSlide": {
    "title": "string (solution/process)",
    "content": "string (2-3 short bullet points, shows the method/approach)"
  },
  "conclusionSlide": {
    "title": "string (summary/next steps)",
    "content": "string (2-3 short bullet points, clear takeaways and actions)"
  }
}`
