package jwt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authgate/pkg/jwt"
)

func TestTokenContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{name: "stored", ctx: jwt.SetToken(context.Background(), "a.b.c"), want: "a.b.c", wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "empty value", ctx: jwt.SetToken(context.Background(), "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := jwt.GetToken(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
