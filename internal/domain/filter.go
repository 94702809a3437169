package domain

// ImageLibraryFilter narrows an image library listing. Empty fields are ignored.
// Search matches the prompt case-insensitively or a tag exactly.
type ImageLibraryFilter struct {
	Style   string
	AIModel string
	Tags    []string
	Search  string
}
