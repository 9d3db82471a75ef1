package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Defaults(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, DefaultExamplesDir, GetExamplesDir(ctx, DefaultExamplesDir))
	assert.Equal(t, "/tmp", GetBuildDir(ctx, "/tmp"))
	assert.False(t, IsKeepArtifactsEnabled(ctx, false))
}

func TestOptions_FromContext(t *testing.T) {
	ctx := WithKeepArtifacts(WithPathOptions(context.Background(), "katas", "/var/build"), true)

	assert.Equal(t, "katas", GetExamplesDir(ctx, DefaultExamplesDir))
	assert.Equal(t, "/var/build", GetBuildDir(ctx, "/tmp"))
	assert.True(t, IsKeepArtifactsEnabled(ctx, false))
}

func TestOptions_EmptyPathFallsBack(t *testing.T) {
	ctx := WithPathOptions(context.Background(), "", "")

	assert.Equal(t, DefaultExamplesDir, GetExamplesDir(ctx, DefaultExamplesDir))
	assert.Equal(t, "/tmp", GetBuildDir(ctx, "/tmp"))
}
