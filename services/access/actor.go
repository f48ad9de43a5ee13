package access

import (
	"context"
	"slices"
)

// Actor is the user on whose behalf sections are evaluated.
type Actor struct {
	UserID  string   `json:"userId"`
	RoleIDs []string `json:"roleIds"`
}

// HasAnyRole reports whether the actor holds at least one of roleIDs.
func (a Actor) HasAnyRole(roleIDs []string) bool {
	for _, id := range roleIDs {
		if slices.Contains(a.RoleIDs, id) {
			return true
		}
	}
	return false
}

type actorKey struct{}

// WithActor attaches the actor to ctx.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor stored by WithActor.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	return actor, ok
}
