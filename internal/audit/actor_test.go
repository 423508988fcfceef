package audit

import (
	"context"
	"testing"
)

func TestActorFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{
			name:   "no actor",
			ctx:    context.Background(),
			want:   "",
			wantOK: false,
		},
		{
			name:   "empty actor",
			ctx:    WithActor(context.Background(), ""),
			want:   "",
			wantOK: false,
		},
		{
			name:   "actor set",
			ctx:    WithActor(context.Background(), "admin"),
			want:   "admin",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ActorFrom(tt.ctx)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("ActorFrom() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestActorOrSystem(t *testing.T) {
	if got := ActorOrSystem(context.Background()); got != SystemActor {
		t.Fatalf("ActorOrSystem() = %q, want %q", got, SystemActor)
	}
	if got := ActorOrSystem(WithActor(context.Background(), "manager")); got != "manager" {
		t.Fatalf("ActorOrSystem() = %q, want %q", got, "manager")
	}
}
