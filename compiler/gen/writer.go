package gen

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/google/uuid"
	"golang.org/x/tools/imports"
)

// Artifact is one generated file. Path is relative to the target
// directory.
type Artifact struct {
	Path    string
	Content []byte
}

// writer collects the artifacts of a run in memory and writes them all at
// once. Files are first written to a staging directory inside the target,
// then moved into place. The files a failed move replaced are restored and
// the ones it added removed, so the target keeps its previous files.
type writer struct {
	target string
	files  []*Artifact
	paths  map[string]struct{}
	logger *slog.Logger

	// Metrics for the run summary.
	bytes int
}

func newWriter(target string, logger *slog.Logger) *writer {
	return &writer{
		target: target,
		paths:  make(map[string]struct{}),
		logger: logger,
	}
}

// add stages an artifact. Paths must stay inside the target directory and
// be unique within the run.
func (w *writer) add(a *Artifact) error {
	path := filepath.Clean(a.Path)
	if path == "." || filepath.IsAbs(path) || path == ".." || strings.HasPrefix(path, ".."+string(filepath.Separator)) {
		return NewGenerationError("write", a.Path, "path must be relative to the target directory", nil)
	}
	if _, ok := w.paths[path]; ok {
		return NewGenerationError("write", a.Path, "file generated twice", nil)
	}
	w.paths[path] = struct{}{}
	w.files = append(w.files, &Artifact{Path: path, Content: a.Content})
	w.bytes += len(a.Content)
	w.logger.Debug("artifact rendered", "file", path, "bytes", len(a.Content))
	return nil
}

// addFile renders a jennifer file and stages it.
func (w *writer) addFile(phase, path string, f *jen.File) error {
	if f == nil {
		return NewGenerationError(phase, path, "dialect returned no file", nil)
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError(phase, path, "render Go source", err)
	}
	return w.add(&Artifact{Path: path, Content: buf.Bytes()})
}

// addTemplate executes a user template on the graph and stages its
// output. Go outputs are formatted, and their imports fixed.
func (w *writer) addTemplate(t *Template, g *Graph) error {
	path := t.Output()
	var buf bytes.Buffer
	if err := t.Execute(&buf, g); err != nil {
		return NewGenerationError("template", path, fmt.Sprintf("execute template %q", t.Name()), err)
	}
	out := buf.Bytes()
	if filepath.Ext(path) == ".go" {
		formatted, err := imports.Process(filepath.Join(w.target, path), out, nil)
		if err != nil {
			return NewGenerationError("template", path, "format Go source", err)
		}
		out = formatted
	}
	return w.add(&Artifact{Path: path, Content: out})
}

// flush writes the staged artifacts to the target directory.
func (w *writer) flush() error {
	if err := os.MkdirAll(w.target, 0o755); err != nil {
		return NewGenerationError("write", w.target, "create target directory", err)
	}
	stage := filepath.Join(w.target, ".pergen-"+uuid.NewString())
	if err := os.Mkdir(stage, 0o755); err != nil {
		return NewGenerationError("write", stage, "create staging directory", err)
	}
	defer os.RemoveAll(stage)
	for _, a := range w.files {
		path := filepath.Join(stage, a.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return NewGenerationError("write", a.Path, "create directory", err)
		}
		if err := os.WriteFile(path, a.Content, 0o644); err != nil {
			return NewGenerationError("write", a.Path, "write staged file", err)
		}
	}
	previous := stage + ".previous"
	defer os.RemoveAll(previous)
	var moved []*Artifact
	for _, a := range w.files {
		if err := w.move(stage, previous, a); err != nil {
			w.rollback(previous, moved)
			return err
		}
		moved = append(moved, a)
	}
	w.logger.Info("files written", "dir", w.target, "files", len(w.files), "bytes", w.bytes)
	return nil
}

// move puts the staged file of a in place. A file it replaces is kept
// under previous. On failure the target holds what it held before.
func (w *writer) move(stage, previous string, a *Artifact) error {
	dst := filepath.Join(w.target, a.Path)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return NewGenerationError("write", a.Path, "create directory", err)
	}
	prev := ""
	if _, err := os.Lstat(dst); err == nil {
		prev = filepath.Join(previous, a.Path)
		if err := os.MkdirAll(filepath.Dir(prev), 0o755); err != nil {
			return NewGenerationError("write", a.Path, "create backup directory", err)
		}
		if err := os.Rename(dst, prev); err != nil {
			return NewGenerationError("write", a.Path, "keep previous file", err)
		}
	}
	if err := os.Rename(filepath.Join(stage, a.Path), dst); err != nil {
		if prev != "" {
			if rerr := os.Rename(prev, dst); rerr != nil {
				w.logger.Error("restore previous file", "file", dst, "error", rerr)
			}
		}
		return NewGenerationError("write", a.Path, "move file into place", err)
	}
	return nil
}

// rollback undoes the moves of a failed flush, last first.
func (w *writer) rollback(previous string, moved []*Artifact) {
	for i := len(moved) - 1; i >= 0; i-- {
		dst := filepath.Join(w.target, moved[i].Path)
		prev := filepath.Join(previous, moved[i].Path)
		if _, err := os.Lstat(prev); err != nil {
			if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
				w.logger.Error("remove generated file", "file", dst, "error", err)
			}
			continue
		}
		if err := os.Rename(prev, dst); err != nil {
			w.logger.Error("restore previous file", "file", dst, "error", err)
		}
	}
}
