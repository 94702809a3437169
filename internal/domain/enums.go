package domain

// ContentAngle is the rhetorical framework a presentation is structured by.
type ContentAngle string

const (
	ContentAngleCUB        ContentAngle = "CUB"
	ContentAnglePASE       ContentAngle = "PASE"
	ContentAngleHEAR       ContentAngle = "HEAR"
	ContentAngleYouTube    ContentAngle = "YOUTUBE"
	ContentAngleWhatWhyHow ContentAngle = "WHATWHYHOW"
)

func (a ContentAngle) String() string { return string(a) }

func (a ContentAngle) IsValid() bool {
	switch a {
	case ContentAngleCUB, ContentAnglePASE, ContentAngleHEAR, ContentAngleYouTube, ContentAngleWhatWhyHow:
		return true
	}
	return false
}

// HookAngle is the optional persuasive style of the opening slide.
type HookAngle string

const (
	HookAngleFortuneTeller HookAngle = "FORTUNE_TELLER"
	HookAngleExperimenter  HookAngle = "EXPERIMENTER"
	HookAngleTeacher       HookAngle = "TEACHER"
	HookAngleMagician      HookAngle = "MAGICIAN"
	HookAngleInvestigator  HookAngle = "INVESTIGATOR"
	HookAngleContrarian    HookAngle = "CONTRARIAN"
)

func (h HookAngle) String() string { return string(h) }

func (h HookAngle) IsValid() bool {
	switch h {
	case HookAngleFortuneTeller, HookAngleExperimenter, HookAngleTeacher,
		HookAngleMagician, HookAngleInvestigator, HookAngleContrarian:
		return true
	}
	return false
}

// SlideTemplate is the visual layout of a slide.
type SlideTemplate string

const (
	SlideTemplateCover              SlideTemplate = "COVER"
	SlideTemplateTextLeftImageRight SlideTemplate = "TEXT_LEFT_IMAGE_RIGHT"
	SlideTemplateTextRightImageLeft SlideTemplate = "TEXT_RIGHT_IMAGE_LEFT"
	SlideTemplateFullText           SlideTemplate = "FULL_TEXT"
	SlideTemplateCanvas             SlideTemplate = "CANVAS"
)

func (t SlideTemplate) String() string { return string(t) }

func (t SlideTemplate) IsValid() bool {
	switch t {
	case SlideTemplateCover, SlideTemplateTextLeftImageRight, SlideTemplateTextRightImageLeft,
		SlideTemplateFullText, SlideTemplateCanvas:
		return true
	}
	return false
}

// ImageStyle selects the style phrase prepended to an image prompt.
type ImageStyle string

const (
	ImageStyleRealistic    ImageStyle = "realistic"
	ImageStyleIllustration ImageStyle = "illustration"
	ImageStyleAbstract     ImageStyle = "abstract"
	ImageStyleMinimalist   ImageStyle = "minimalist"
	ImageStyleCorporate    ImageStyle = "corporate"
	ImageStyleInfographic  ImageStyle = "infographic"
)

func (s ImageStyle) String() string { return string(s) }

func (s ImageStyle) IsValid() bool {
	switch s {
	case ImageStyleRealistic, ImageStyleIllustration, ImageStyleAbstract,
		ImageStyleMinimalist, ImageStyleCorporate, ImageStyleInfographic:
		return true
	}
	return false
}

// ImageSize is a WIDTHxHEIGHT value accepted by the image models.
type ImageSize string

const (
	ImageSizeSquare         ImageSize = "1024x1024"
	ImageSizeLandscape      ImageSize = "1792x1024"
	ImageSizePortrait       ImageSize = "1024x1792"
	ImageSizeLandscapeSmall ImageSize = "1536x1024"
	ImageSizePortraitSmall  ImageSize = "1024x1536"
)

func (s ImageSize) String() string { return string(s) }

func (s ImageSize) IsValid() bool {
	switch s {
	case ImageSizeSquare, ImageSizeLandscape, ImageSizePortrait,
		ImageSizeLandscapeSmall, ImageSizePortraitSmall:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeBrainstorm     EntityType = "BRAINSTORM"
	EntityTypeContextProfile EntityType = "CONTEXT_PROFILE"
	EntityTypePresentation   EntityType = "PRESENTATION"
	EntityTypeSlide          EntityType = "SLIDE"
	EntityTypeImage          EntityType = "IMAGE"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeBrainstorm, EntityTypeContextProfile, EntityTypePresentation,
		EntityTypeSlide, EntityTypeImage:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
