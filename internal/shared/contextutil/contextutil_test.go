package contextutil_test

import (
	"context"
	"testing"

	"go-leave/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestAndUserID(t *testing.T) {
	assert.Empty(t, contextutil.GetRequestID(context.Background()))
	assert.Empty(t, contextutil.GetUserID(context.Background()))

	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithUserID(ctx, "emp-1")

	assert.Equal(t, "rid-1", contextutil.GetRequestID(ctx))
	assert.Equal(t, "emp-1", contextutil.GetUserID(ctx))
}

func TestGetLogger_Fallbacks(t *testing.T) {
	def := zap.NewExample()

	assert.Same(t, def, contextutil.GetLogger(context.Background(), def))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	scoped := zap.NewExample()
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, def))
}
