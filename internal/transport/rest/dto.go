package rest

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/internal/framework"
)

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type brainstormResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toBrainstormResponse(b domain.Brainstorm) brainstormResponse {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return brainstormResponse{
		ID:          b.ID.String(),
		Title:       b.Title,
		Description: b.Description,
		Content:     b.Content,
		Tags:        tags,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

type contextProfileResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	BusinessType   string          `json:"businessType"`
	TargetAudience string          `json:"targetAudience"`
	Objectives     string          `json:"objectives"`
	BrandTone      string          `json:"brandTone"`
	Preferences    json.RawMessage `json:"preferences"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func toContextProfileResponse(cp domain.ContextProfile) contextProfileResponse {
	prefs := cp.Preferences
	if len(prefs) == 0 {
		prefs = json.RawMessage(`{}`)
	}
	return contextProfileResponse{
		ID:             cp.ID.String(),
		Name:           cp.Name,
		BusinessType:   cp.BusinessType,
		TargetAudience: cp.TargetAudience,
		Objectives:     cp.Objectives,
		BrandTone:      cp.BrandTone,
		Preferences:    prefs,
		CreatedAt:      cp.CreatedAt,
		UpdatedAt:      cp.UpdatedAt,
	}
}

type presentationResponse struct {
	ID               string    `json:"id"`
	BrainstormID     string    `json:"brainstormId"`
	ContextProfileID string    `json:"contextProfileId"`
	Title            string    `json:"title"`
	ContentAngle     string    `json:"contentAngle"`
	HookAngle        *string   `json:"hookAngle,omitempty"`
	Narration        *string   `json:"narration,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func toPresentationResponse(p domain.Presentation) presentationResponse {
	var hook *string
	if p.HookAngle != nil {
		h := p.HookAngle.String()
		hook = &h
	}
	return presentationResponse{
		ID:               p.ID.String(),
		BrainstormID:     p.BrainstormID.String(),
		ContextProfileID: p.ContextProfileID.String(),
		Title:            p.Title,
		ContentAngle:     p.ContentAngle.String(),
		HookAngle:        hook,
		Narration:        p.Narration,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

type presentationDetailsResponse struct {
	presentationResponse
	Brainstorm     brainstormResponse     `json:"brainstorm"`
	ContextProfile contextProfileResponse `json:"contextProfile"`
	Slides         []slideResponse        `json:"slides"`
}

func toPresentationDetailsResponse(p domain.PresentationWithDetails) presentationDetailsResponse {
	return presentationDetailsResponse{
		presentationResponse: toPresentationResponse(p.Presentation),
		Brainstorm:           toBrainstormResponse(p.Brainstorm),
		ContextProfile:       toContextProfileResponse(p.ContextProfile),
		Slides:               mapSlice(p.Slides, toSlideResponse),
	}
}

type slideResponse struct {
	ID               string          `json:"id"`
	PresentationID   string          `json:"presentationId"`
	Order            int             `json:"order"`
	Template         string          `json:"template"`
	Title            string          `json:"title"`
	Content          string          `json:"content"`
	NarrationSegment *string         `json:"narrationSegment,omitempty"`
	ImageURL         *string         `json:"imageUrl,omitempty"`
	CanvasData       json.RawMessage `json:"canvasData,omitempty"`
	ThemeData        json.RawMessage `json:"themeData,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func toSlideResponse(s domain.Slide) slideResponse {
	return slideResponse{
		ID:               s.ID.String(),
		PresentationID:   s.PresentationID.String(),
		Order:            s.Order,
		Template:         s.Template.String(),
		Title:            s.Title,
		Content:          s.Content,
		NarrationSegment: s.NarrationSegment,
		ImageURL:         s.ImageURL,
		CanvasData:       s.CanvasData,
		ThemeData:        s.ThemeData,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

type imageResponse struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Prompt      string    `json:"prompt"`
	Style       string    `json:"style,omitempty"`
	AIModel     string    `json:"aiModel,omitempty"`
	Tags        []string  `json:"tags"`
	IsGenerated bool      `json:"isGenerated"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toImageResponse(e domain.ImageLibraryEntry) imageResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return imageResponse{
		ID:          e.ID.String(),
		URL:         e.URL,
		Prompt:      e.Prompt,
		Style:       e.Style,
		AIModel:     e.AIModel,
		Tags:        tags,
		IsGenerated: e.IsGenerated,
		CreatedAt:   e.CreatedAt,
	}
}

type imageStatsResponse struct {
	TotalImages int            `json:"totalImages"`
	ByStyle     map[string]int `json:"byStyle"`
	ByModel     map[string]int `json:"byModel"`
	RecentCount int            `json:"recentCount"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type componentResponse struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Example     string `json:"example,omitempty"`
}

type contentAngleResponse struct {
	Name        string              `json:"name"`
	Label       string              `json:"label"`
	Description string              `json:"description"`
	Components  []componentResponse `json:"components"`
}

func toContentAngleResponse(a framework.ContentAngle) contentAngleResponse {
	return contentAngleResponse{
		Name:        a.Name.String(),
		Label:       a.Label,
		Description: a.Description,
		Components: mapSlice(a.Components, func(c framework.Component) componentResponse {
			return componentResponse{Key: c.Key, Label: c.Label, Description: c.Description, Example: c.Example}
		}),
	}
}

type hookAngleResponse struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

func toHookAngleResponse(h framework.HookAngle) hookAngleResponse {
	return hookAngleResponse{
		Name:        h.Name.String(),
		Label:       h.Label,
		Description: h.Description,
		Example:     h.Example,
	}
}

type aiSlideResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type aiPresentationResponse struct {
	HookSlide       *aiSlideResponse `json:"hookSlide"`
	WhatSlide       *aiSlideResponse `json:"whatSlide"`
	WhySlide        *aiSlideResponse `json:"whySlide"`
	HowSlide        *aiSlideResponse `json:"howSlide"`
	ConclusionSlide *aiSlideResponse `json:"conclusionSlide"`
}

func toAISlide(s *domain.AISlideContent) *aiSlideResponse {
	if s == nil {
		return nil
	}
	return &aiSlideResponse{Title: s.Title, Content: s.Content}
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
