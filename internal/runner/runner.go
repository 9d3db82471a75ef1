package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"

	"github.com/ib-77/fpkata/pkg/fp"
	"github.com/ib-77/fpkata/pkg/fp/either"
)

const Usage = "Please pass an exercise name as argument."

var (
	ErrInvalidExercise = errors.New("invalid exercise name")
	ErrCompile         = errors.New("compile failed")
	ErrExecute         = errors.New("execution failed")
)

// Runner compiles and executes exercises.
type Runner struct {
	commander Commander
	stdout    io.Writer
	stderr    io.Writer
	logger    *slog.Logger
}

func New(commander Commander, stdout, stderr io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		commander: commander,
		stdout:    stdout,
		stderr:    stderr,
		logger:    logger,
	}
}

type build struct {
	runID    uuid.UUID
	exercise string
	dir      string
	artifact string
}

// Main runs the exercise named by args[0] and returns the process exit code:
// 1 when no name is given, 0 otherwise. Failures are logged, not returned.
func (r *Runner) Main(ctx context.Context, args []string) int {
	if len(args) == 0 || args[0] == "" {
		fmt.Fprintln(r.stdout, Usage)
		return 1
	}

	res := r.Run(ctx, args[0])
	if err, failed := res.Err(); failed {
		r.logger.Error("exercise failed", "exercise", args[0], "error", err)
	}
	return 0
}

// Run validates, compiles and executes one exercise. The exercise output is
// forwarded to the runner's writers even when execution fails.
func (r *Runner) Run(ctx context.Context, exercise string) either.Either[error, Output] {
	b := build{runID: uuid.New(), exercise: exercise}
	log := r.logger.With("run_id", b.runID.String(), "exercise", exercise)

	b.dir = filepath.Join(GetBuildDir(ctx, os.TempDir()), "run-exercise-"+b.runID.String())
	b.artifact = filepath.Join(b.dir, exercise)
	if runtime.GOOS == "windows" {
		b.artifact += ".exe"
	}

	if !IsKeepArtifactsEnabled(ctx, DefaultKeepArtifacts) {
		defer func() {
			if err := os.RemoveAll(b.dir); err != nil {
				log.Warn("could not remove build directory", "dir", b.dir, "error", err)
			}
		}()
	}

	return fp.Pipe3(
		validateName(b),
		either.ChainF(func(b build) either.Either[error, build] { return r.compile(ctx, log, b) }),
		either.ChainF(func(b build) either.Either[error, Output] { return r.execute(ctx, log, b) }),
		func(res either.Either[error, Output]) either.Either[error, Output] {
			return either.Tee(res, func(Output) { log.Debug("exercise finished") })
		},
	)
}

func validateName(b build) either.Either[error, build] {
	valid := func(b build) bool {
		name := b.exercise
		return name != "" && name != "." && name != ".." &&
			!strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
	}
	return either.Validate(b, valid, fmt.Errorf("%w: %q", ErrInvalidExercise, b.exercise))
}

func (r *Runner) compile(ctx context.Context, log *slog.Logger, b build) either.Either[error, build] {
	pkg := filepath.Join(GetExamplesDir(ctx, DefaultExamplesDir), b.exercise)
	if !filepath.IsAbs(pkg) {
		pkg = "./" + filepath.ToSlash(pkg)
	}

	log.Debug("compiling", "package", pkg, "artifact", b.artifact)
	out, err := r.commander.Run(ctx, "go", "build", "-o", b.artifact, pkg)
	if err != nil {
		return either.Failure[error, build](fmt.Errorf("%w: %s: %w: %s",
			ErrCompile, pkg, err, strings.TrimSpace(string(out.Stderr))))
	}
	return either.Success[error](b)
}

func (r *Runner) execute(ctx context.Context, log *slog.Logger, b build) either.Either[error, Output] {
	log.Debug("executing", "artifact", b.artifact)
	out, err := r.commander.Run(ctx, b.artifact)

	if len(out.Stdout) > 0 {
		_, _ = r.stdout.Write(out.Stdout)
	}
	if len(out.Stderr) > 0 {
		_, _ = r.stderr.Write(out.Stderr)
	}

	if err != nil {
		return either.Failure[error, Output](fmt.Errorf("%w: %s: %w", ErrExecute, b.exercise, err))
	}
	return either.Success[error](out)
}
