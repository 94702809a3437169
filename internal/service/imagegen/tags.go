package imagegen

import "strings"

var commonTags = []string{
	"business", "professional", "presentation", "corporate", "modern", "clean",
	"abstract", "illustration", "realistic", "minimalist", "colorful", "diagram",
	"chart", "graph", "icon", "symbol", "concept", "technology", "team", "growth",
	"success", "innovation", "strategy", "leadership", "communication", "data",
}

// ExtractTags picks library tags out of a raw prompt by substring match.
// The result is de-duplicated and never empty.
func ExtractTags(prompt string) []string {
	lower := strings.ToLower(prompt)

	var tags []string
	seen := make(map[string]bool)
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	for _, tag := range commonTags {
		if strings.Contains(lower, tag) {
			add(tag)
		}
	}

	if strings.Contains(lower, "photo") || strings.Contains(lower, "realistic") {
		add("realistic")
	}
	if strings.Contains(lower, "illustration") || strings.Contains(lower, "vector") {
		add("illustration")
	}
	if strings.Contains(lower, "abstract") {
		add("abstract")
	}

	if len(tags) == 0 {
		return []string{"presentation", "generated"}
	}
	return tags
}
