package contextprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// CreateProfile creates a context profile for the current user.
func (s *Service) CreateProfile(ctx context.Context, input CreateProfileInput) (*domain.ContextProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.create(ctx, &domain.ContextProfile{
		Name:           strings.TrimSpace(input.Name),
		BusinessType:   strings.TrimSpace(input.BusinessType),
		TargetAudience: strings.TrimSpace(input.TargetAudience),
		Objectives:     strings.TrimSpace(input.Objectives),
		BrandTone:      strings.TrimSpace(input.BrandTone),
		Preferences:    input.Preferences,
	})
}

// CreateDefaultProfile creates the generic profile used by quick start.
// The brand tone follows the "tone" preference and objectives are joined
// into one line.
func (s *Service) CreateDefaultProfile(ctx context.Context, input CreateDefaultInput) (*domain.ContextProfile, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = DefaultProfileName
	}
	audience := strings.TrimSpace(input.Audience)
	if audience == "" {
		audience = DefaultAudience
	}
	objectives := input.Objectives
	if len(objectives) == 0 {
		objectives = []string{DefaultObjective}
	}

	prefs := input.Preferences
	if prefs == nil {
		prefs = map[string]string{"tone": DefaultBrandTone, "style": defaultPreferredStyle}
	}
	tone := prefs["tone"]
	if tone == "" {
		tone = DefaultBrandTone
	}
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("marshal preferences: %w", err)
	}

	return s.create(ctx, &domain.ContextProfile{
		Name:           name,
		BusinessType:   DefaultBusinessType,
		TargetAudience: audience,
		Objectives:     strings.Join(objectives, ", "),
		BrandTone:      tone,
		Preferences:    prefsJSON,
	})
}

func (s *Service) create(ctx context.Context, profile *domain.ContextProfile) (*domain.ContextProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var created *domain.ContextProfile
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.profiles.Create(txCtx, userID, profile)
		if createErr != nil {
			return fmt.Errorf("create context profile: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeContextProfile,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": created.Name},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "context profile created",
		slog.String("user_id", userID.String()),
		slog.String("profile_id", created.ID.String()),
	)
	return created, nil
}
