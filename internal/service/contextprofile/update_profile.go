package contextprofile

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// UpdateProfile applies a partial update to a profile of the current user.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.ContextProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.ContextProfileUpdateParams{
		Name:           trimmed(input.Name),
		BusinessType:   trimmed(input.BusinessType),
		TargetAudience: trimmed(input.TargetAudience),
		Objectives:     trimmed(input.Objectives),
		BrandTone:      trimmed(input.BrandTone),
		Preferences:    input.Preferences,
	}

	var updated *domain.ContextProfile
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.profiles.GetByID(txCtx, userID, input.ProfileID)
		if getErr != nil {
			return fmt.Errorf("get context profile: %w", getErr)
		}

		var updateErr error
		updated, updateErr = s.profiles.Update(txCtx, userID, input.ProfileID, params)
		if updateErr != nil {
			return fmt.Errorf("update context profile: %w", updateErr)
		}

		changes := buildProfileChanges(old, updated)
		if len(changes) > 0 {
			if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     userID,
				EntityType: domain.EntityTypeContextProfile,
				EntityID:   &input.ProfileID,
				Action:     domain.AuditActionUpdate,
				Changes:    changes,
			}); auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "context profile updated",
		slog.String("user_id", userID.String()),
		slog.String("profile_id", input.ProfileID.String()),
	)
	return updated, nil
}

func buildProfileChanges(old, updated *domain.ContextProfile) map[string]any {
	changes := make(map[string]any)
	diff := func(field, o, n string) {
		if o != n {
			changes[field] = map[string]any{"old": o, "new": n}
		}
	}
	diff("name", old.Name, updated.Name)
	diff("business_type", old.BusinessType, updated.BusinessType)
	diff("target_audience", old.TargetAudience, updated.TargetAudience)
	diff("objectives", old.Objectives, updated.Objectives)
	diff("brand_tone", old.BrandTone, updated.BrandTone)
	if !bytes.Equal(old.Preferences, updated.Preferences) {
		changes["preferences"] = map[string]any{"changed": true}
	}
	return changes
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
