// Package manifest reads pool manifests: declarative descriptions of
// repositories and the installed and available objects they provide.
//
// Two formats are understood. Starlark manifests (*.zypp, *.star) are
// parsed with github.com/bazelbuild/buildtools/build:
//
//	repository(name = "oss", priority = 99)
//	package(name = "amarok", edition = "2.4-1", arch = "x86_64", installed = True)
//	package(name = "amarok", edition = "2.5-1", arch = "x86_64", repo = "oss")
//	patch(name = "amarok-sec", edition = "1", repo = "oss", category = "security")
//
// YAML manifests (*.yaml, *.yml) describe the same content:
//
//	repositories:
//	  - name: oss
//	    priority: 99
//	objects:
//	  - kind: package
//	    name: amarok
//	    edition: 2.4-1
//	    installed: true
package manifest

import (
	"fmt"

	"github.com/albertocavalcante/go-selectable/label"
)

// Position represents a source position for diagnostics.
type Position struct {
	Filename string
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Line > 0 {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return p.Filename
}

// Manifest is the parsed content of a manifest file.
type Manifest struct {
	Path         string       `yaml:"-"`
	Repositories []Repository `yaml:"repositories"`
	Objects      []Object     `yaml:"objects"`
}

// Repository declares a repository.
type Repository struct {
	Pos      Position `yaml:"-"`
	Name     string   `yaml:"name"`
	Priority int      `yaml:"priority"`
}

// Object declares one installed or available object.
type Object struct {
	Pos  Position   `yaml:"-"`
	Kind label.Kind `yaml:"kind"`
	Name string     `yaml:"name"`

	Edition string `yaml:"edition"`
	Arch    string `yaml:"arch"`
	Vendor  string `yaml:"vendor"`

	// BuildTime and InstallTime are Unix seconds.
	BuildTime   int64 `yaml:"build_time"`
	InstallTime int64 `yaml:"install_time"`

	Installed bool   `yaml:"installed"`
	Repo      string `yaml:"repo"`
	Category  string `yaml:"category"`

	// Establish is the solver classification of a patch:
	// undetermined, non_relevant, satisfied or broken.
	Establish string `yaml:"establish"`
	Locked    bool   `yaml:"locked"`
}
