package imagegen

import (
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

const promptSuffix = "no text overlays, clean modern design"

var stylePhrases = map[domain.ImageStyle]string{
	domain.ImageStyleRealistic:    "Photorealistic, high-quality professional photograph of",
	domain.ImageStyleIllustration: "Digital illustration, vector art style, of",
	domain.ImageStyleAbstract:     "Abstract artistic composition representing",
	domain.ImageStyleMinimalist:   "Minimalist image with simple shapes and plenty of white space showing",
	domain.ImageStyleCorporate:    "Corporate business style image, polished and professional, of",
	domain.ImageStyleInfographic:  "Infographic style visual with icons and clear structure about",
}

// EnhancePrompt frames the user's prompt with the style phrase and the fixed
// suffix. Unknown styles are treated as realistic.
func EnhancePrompt(prompt string, style domain.ImageStyle) string {
	phrase, ok := stylePhrases[style]
	if !ok {
		phrase = stylePhrases[domain.ImageStyleRealistic]
	}
	return phrase + " " + strings.TrimSpace(prompt) + ", " + promptSuffix
}
