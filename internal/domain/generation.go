package domain

// AISlideContent is one slot of the language model reply.
type AISlideContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AIGeneratedPresentation is the parsed language model reply: exactly five
// named slots. A slot is nil when the reply omitted it or set it to null.
type AIGeneratedPresentation struct {
	HookSlide       *AISlideContent `json:"hookSlide"`
	WhatSlide       *AISlideContent `json:"whatSlide"`
	WhySlide        *AISlideContent `json:"whySlide"`
	HowSlide        *AISlideContent `json:"howSlide"`
	ConclusionSlide *AISlideContent `json:"conclusionSlide"`
}

// AIGeneratedSlide is one slide produced by a generation run, before it is persisted.
type AIGeneratedSlide struct {
	Title            string
	Content          string
	Template         SlideTemplate
	NarrationSegment string
	ImageURL         *string
}

// CompletionRequest is one structured chat request to a language model.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
	JSON        bool
}
