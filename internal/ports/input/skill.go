package input

import (
	"context"

	"feedskill/internal/domain/entities"
)

// SkillUseCase turns one inbound invocation into exactly one outbound action.
type SkillUseCase interface {
	Dispatch(ctx context.Context, inv entities.Invocation) entities.Action
}
