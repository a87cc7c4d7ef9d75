package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bazelbuild/buildtools/build"

	"github.com/albertocavalcante/go-selectable/internal/buildutil"
	"github.com/albertocavalcante/go-selectable/label"
)

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     Position
	Message string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	if e.Pos.Filename != "" {
		return fmt.Sprintf("%s: %s", e.Pos.Filename, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

// ParseResult contains the parsed manifest and any diagnostics.
type ParseResult struct {
	Manifest *Manifest
	Errors   []*ParseError
	Warnings []*ParseError
}

// HasErrors returns true if there were parse errors.
func (r *ParseResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Err joins all errors into one, or returns nil.
func (r *ParseResult) Err() error {
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Format is the syntax of a manifest file.
type Format int

// Supported formats.
const (
	FormatStarlark Format = iota
	FormatYAML
)

// FormatOf picks the format from the file extension. Anything that is not
// YAML is read as Starlark.
func FormatOf(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatStarlark
	}
}

// ParseFile reads and parses a manifest from disk.
func ParseFile(filename string) (*ParseResult, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return ParseContent(filename, data)
}

// ParseContent parses manifest content in the format implied by filename.
// A syntax error is returned as an error; problems with individual
// declarations are collected in the result.
func ParseContent(filename string, content []byte) (*ParseResult, error) {
	p := &parser{filename: filename}
	var (
		m   *Manifest
		err error
	)
	switch FormatOf(filename) {
	case FormatYAML:
		m, err = p.parseYAML(content)
	default:
		m, err = p.parseStarlark(content)
	}
	if err != nil {
		return nil, err
	}
	p.validate(m)
	return &ParseResult{
		Manifest: m,
		Errors:   p.errors,
		Warnings: p.warnings,
	}, nil
}

type parser struct {
	filename string
	errors   []*ParseError
	warnings []*ParseError
}

func (p *parser) parseStarlark(content []byte) (*Manifest, error) {
	raw, err := build.ParseDefault(p.filename, content)
	if err != nil {
		return nil, &ParseError{
			Pos:     Position{Filename: p.filename},
			Message: fmt.Sprintf("syntax error: %v", err),
			Wrapped: err,
		}
	}

	m := &Manifest{Path: p.filename}
	for _, stmt := range raw.Stmt {
		call, ok := stmt.(*build.CallExpr)
		if !ok {
			if _, isComment := stmt.(*build.CommentBlock); !isComment {
				p.addWarning(p.position(stmt), "ignoring statement %s", build.FormatString(stmt))
			}
			continue
		}
		pos := p.position(call)
		name := buildutil.FuncName(call)
		if n := buildutil.Positional(call); n > 0 {
			p.addError(pos, "%s: positional arguments are not supported", name)
			continue
		}
		switch name {
		case "repository":
			if repo, ok := p.parseRepository(call, pos); ok {
				m.Repositories = append(m.Repositories, repo)
			}
		default:
			kind, err := label.ParseKind(name)
			if err != nil {
				p.addWarning(pos, "unknown function %q", name)
				continue
			}
			if obj, ok := p.parseObject(call, kind, pos); ok {
				m.Objects = append(m.Objects, obj)
			}
		}
	}
	return m, nil
}

var repositoryAttrs = []string{"name", "priority"}

func (p *parser) parseRepository(call *build.CallExpr, pos Position) (Repository, bool) {
	p.checkAttrs(call, pos, "repository", repositoryAttrs)
	repo := Repository{Pos: pos}
	name, err1 := buildutil.String(call, "name")
	prio, err2 := buildutil.Int64(call, "priority")
	if err := errors.Join(err1, err2); err != nil {
		p.addErrorWrap(pos, err, "repository: %v", err)
		return repo, false
	}
	repo.Name, repo.Priority = name, int(prio)
	return repo, true
}

var objectAttrs = []string{
	"name", "edition", "arch", "vendor", "build_time", "install_time",
	"installed", "repo", "category", "establish", "locked",
}

func (p *parser) parseObject(call *build.CallExpr, kind label.Kind, pos Position) (Object, bool) {
	p.checkAttrs(call, pos, string(kind), objectAttrs)
	obj := Object{Pos: pos, Kind: kind}
	var errs []error
	str := func(dst *string, name string) {
		v, err := buildutil.String(call, name)
		errs = append(errs, err)
		*dst = v
	}
	num := func(dst *int64, name string) {
		v, err := buildutil.Int64(call, name)
		errs = append(errs, err)
		*dst = v
	}
	flag := func(dst *bool, name string) {
		v, err := buildutil.Bool(call, name)
		errs = append(errs, err)
		*dst = v
	}
	str(&obj.Name, "name")
	str(&obj.Edition, "edition")
	str(&obj.Arch, "arch")
	str(&obj.Vendor, "vendor")
	num(&obj.BuildTime, "build_time")
	num(&obj.InstallTime, "install_time")
	flag(&obj.Installed, "installed")
	str(&obj.Repo, "repo")
	str(&obj.Category, "category")
	str(&obj.Establish, "establish")
	flag(&obj.Locked, "locked")
	if err := errors.Join(errs...); err != nil {
		p.addErrorWrap(pos, err, "%s: %v", kind, err)
		return obj, false
	}
	return obj, true
}

func (p *parser) checkAttrs(call *build.CallExpr, pos Position, fn string, known []string) {
	for _, name := range buildutil.Names(call) {
		if !slices.Contains(known, name) {
			p.addWarning(pos, "%s: unknown attribute %q", fn, name)
		}
	}
}

func (p *parser) position(expr build.Expr) Position {
	line, col := buildutil.Pos(expr)
	return Position{
		Filename: p.filename,
		Line:     line,
		Column:   col,
	}
}

func (p *parser) addError(pos Position, format string, args ...any) {
	p.errors = append(p.errors, &ParseError{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	})
}

func (p *parser) addErrorWrap(pos Position, err error, format string, args ...any) {
	p.errors = append(p.errors, &ParseError{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
		Wrapped: err,
	})
}

func (p *parser) addWarning(pos Position, format string, args ...any) {
	p.warnings = append(p.warnings, &ParseError{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	})
}
