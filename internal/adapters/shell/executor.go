// Package shell provides the subprocess executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/npmbridge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs cmd in cmd.WorkingDir.
// The environment is the process environment with cmd.Environment layered on top.
// A nil stdout or stderr is replaced by a line-buffered writer into the logger.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	if len(cmd.Args) == 0 {
		return nil
	}

	name := cmd.Args[0]
	cmdEnv := resolveEnvironment(os.Environ(), cmd.Environment)

	// Resolve against the command's own PATH rather than ours.
	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args[1:]...) //nolint:gosec // configured npm binary
	c.Args[0] = name
	c.Dir = cmd.WorkingDir
	c.Env = cmdEnv

	var outLog, errLog *logWriter
	if stdout == nil {
		outLog = &logWriter{logger: e.logger, level: domain.LogLevelInfo}
		stdout = outLog
	}
	if stderr == nil {
		errLog = &logWriter{logger: e.logger, level: domain.LogLevelWarn}
		stderr = errLog
	}
	c.Stdout = stdout
	c.Stderr = stderr

	runErr := c.Run()

	outLog.Flush()
	errLog.Flush()

	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		err := zerr.Wrap(runErr, "command failed")
		err = zerr.With(err, "command", strings.Join(cmd.Args, " "))
		err = zerr.With(err, "dir", cmd.WorkingDir)
		return zerr.With(err, "exit_code", exitCode)
	}

	return nil
}

// logWriter forwards complete lines to the logger, buffering partial writes.
type logWriter struct {
	logger ports.Logger
	level  domain.LogLevel
	mu     sync.Mutex
	buf    bytes.Buffer
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Incomplete line: keep it for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimSuffix(line, "\n"))
	}
	return len(p), nil
}

// Flush emits any buffered partial line. It is safe on a nil writer.
func (w *logWriter) Flush() {
	if w == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *logWriter) emit(line string) {
	if w.level >= domain.LogLevelWarn {
		w.logger.Warn(line)
		return
	}
	w.logger.Info(line)
}

// resolveEnvironment layers overrides over the system environment.
// The result is sorted for deterministic process environments.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, "PATH="); ok {
			path = after
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
