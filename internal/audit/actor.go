// Package audit передаёт идентификатор пользователя, выполняющего изменения, через контекст.
package audit

import "context"

type contextKey string

const actorKey contextKey = "actor"

// SystemActor используется, если пользователь в контексте не задан.
const SystemActor = "system"

// WithActor добавляет идентификатор пользователя в контекст.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFrom извлекает идентификатор пользователя из контекста.
func ActorFrom(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorKey).(string)
	if !ok || actor == "" {
		return "", false
	}
	return actor, true
}

// ActorOrSystem возвращает пользователя из контекста или SystemActor.
func ActorOrSystem(ctx context.Context) string {
	if actor, ok := ActorFrom(ctx); ok {
		return actor
	}
	return SystemActor
}
