package auth

import (
	"context"
	"strings"

	"induparts-system/internal/apperr"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEmpleado  Role = "empleado"
	RoleConsultor Role = "consultor"
)

func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleEmpleado:
		return RoleEmpleado, true
	case RoleConsultor:
		return RoleConsultor, true
	}
	return "", false
}

// Actor is the caller identity every core operation receives explicitly.
// There is no ambient current-user lookup anywhere in the core.
type Actor struct {
	UserID int64
	Name   string
	Role   Role
}

// Require is the access policy gate: allow when the actor holds one of
// the given roles, deny otherwise. It runs before any data access.
func Require(actor Actor, roles ...Role) error {
	for _, r := range roles {
		if actor.Role == r {
			return nil
		}
	}
	return apperr.Authorization("role %q is not allowed to perform this operation", actor.Role)
}

type ctxKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

func ActorFrom(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(ctxKey{}).(Actor)
	return actor, ok
}
