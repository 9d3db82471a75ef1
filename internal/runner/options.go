package runner

import "context"

type OptionKey string

const (
	PathOptionKey     OptionKey = "path_options"
	ArtifactOptionKey OptionKey = "artifact_options"
)

const (
	DefaultExamplesDir   = "examples"
	DefaultKeepArtifacts = false
)

type PathOptions struct {
	ExamplesDir string
	BuildDir    string
}

type ArtifactOptions struct {
	Keep bool
}

func WithPathOptions(ctx context.Context, examplesDir, buildDir string) context.Context {
	return context.WithValue(ctx, PathOptionKey, PathOptions{ExamplesDir: examplesDir, BuildDir: buildDir})
}

func WithKeepArtifacts(ctx context.Context, keep bool) context.Context {
	return context.WithValue(ctx, ArtifactOptionKey, ArtifactOptions{Keep: keep})
}

func GetExamplesDir(ctx context.Context, defaultDir string) string {
	options, ok := ctx.Value(PathOptionKey).(PathOptions)
	if ok && options.ExamplesDir != "" {
		return options.ExamplesDir
	}
	return defaultDir
}

func GetBuildDir(ctx context.Context, defaultDir string) string {
	options, ok := ctx.Value(PathOptionKey).(PathOptions)
	if ok && options.BuildDir != "" {
		return options.BuildDir
	}
	return defaultDir
}

func IsKeepArtifactsEnabled(ctx context.Context, defaultKeep bool) bool {
	options, ok := ctx.Value(ArtifactOptionKey).(ArtifactOptions)
	if ok {
		return options.Keep
	}
	return defaultKeep
}
