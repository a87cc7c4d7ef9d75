package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	selectable "github.com/albertocavalcante/go-selectable"
)

var testManifest = filepath.Join("..", "..", "manifest", "testdata", "system.zypp")

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"zyppsel", "--no-color", "--manifest", testManifest}, args...)
	err = execute(full, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestStatusText(t *testing.T) {
	out, _, err := run(t, "status")
	require.NoError(t, err)

	want := strings.Join([]string{
		"i  amarok (I 1) 2.4-1.x86_64 (A 2) 2.5-1.x86_64",
		"   kdelibs (I 0) - (A 1) 4.0-1.x86_64",
		"il telnet (I 1) 1.2-3.x86_64 (A 0) -",
		"   patch:amarok-sec (I 0) - (A 1) 1.noarch",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestStatusSelected(t *testing.T) {
	out, _, err := run(t, "status", "telnet", "kdelibs")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "telnet")
	assert.Contains(t, lines[1], "kdelibs")
}

func TestStatusJSON(t *testing.T) {
	out, _, err := run(t, "--format", "json", "status")
	require.NoError(t, err)

	var sums []selectable.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sums))
	require.Len(t, sums, 4)
	assert.Equal(t, "amarok", sums[0].Ident)
	assert.Equal(t, "Protected", sums[2].Status.String())
	assert.Equal(t, "patch", sums[3].Kind)
}

func TestShowYAML(t *testing.T) {
	out, _, err := run(t, "--format", "yaml", "show", "amarok")
	require.NoError(t, err)

	var sum map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &sum))
	assert.Equal(t, "amarok", sum["ident"])
	assert.Equal(t, "KeepInstalled", sum["status"])
	assert.Len(t, sum["available_all"], 2)
}

func TestShowText(t *testing.T) {
	out, _, err := run(t, "show", "amarok")
	require.NoError(t, err)
	assert.Contains(t, out, "fate: Unmodified by solver")
	assert.Contains(t, out, "C amarok-2.5-1.x86_64 (update)")
}

func TestSet(t *testing.T) {
	out, _, err := run(t, "set", "amarok=Update", "telnet=del")
	require.NoError(t, err)
	assert.Contains(t, out, "ok       amarok=update")
	assert.Contains(t, out, "ok       telnet=del")
	assert.Contains(t, out, "> amarok (I 1)")
	assert.Contains(t, out, "- telnet (I 1)")
}

func TestSetRejected(t *testing.T) {
	out, stderr, err := run(t, "--causer", "solver", "set", "telnet=Del", "kdelibs=Install")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, exitCode(err))
	assert.Contains(t, out, "rejected telnet=del")
	assert.Contains(t, out, "ok       kdelibs=install")
	assert.Contains(t, out, "a+ kdelibs")
	assert.Contains(t, stderr, "rejected")
}

func TestSetJSON(t *testing.T) {
	out, _, err := run(t, "--format", "json", "set", "kdelibs=Install")
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "kdelibs", results[0]["ident"])
	assert.Equal(t, true, results[0]["ok"])
	assert.Equal(t, "Install", results[0]["status"])
}

func TestSetBadOperation(t *testing.T) {
	for _, arg := range []string{"amarok", "amarok=", "=Install", "amarok=Maybe"} {
		_, _, err := run(t, "set", arg)
		require.Error(t, err, arg)
		assert.Equal(t, ExitCommandError, exitCode(err), arg)
	}
}

func TestDiffUpToDate(t *testing.T) {
	out, _, err := run(t, "diff", "--up-to-date")
	require.NoError(t, err)
	assert.Equal(t, "upgrade   amarok 2.4-1 -> 2.5-1 (user)\n1 change(s).\n", out)
}

func TestDiffOperations(t *testing.T) {
	out, _, err := run(t, "--format", "yaml", "diff", "kdelibs=Install", "amarok=Del")
	require.NoError(t, err)

	var changes selectable.Changes
	require.NoError(t, yaml.Unmarshal([]byte(out), &changes))
	require.Len(t, changes.Installs, 1)
	assert.Equal(t, "kdelibs", changes.Installs[0].Ident)
	require.Len(t, changes.Deletes, 1)
	assert.Equal(t, "amarok", changes.Deletes[0].Ident)
}

func TestDiffNothing(t *testing.T) {
	out, _, err := run(t, "diff")
	require.NoError(t, err)
	assert.Equal(t, "Nothing to do.\n", out)
}

func TestCommandErrors(t *testing.T) {
	t.Run("no manifest", func(t *testing.T) {
		var out, errOut bytes.Buffer
		err := execute([]string{"zyppsel", "status"}, &out, &errOut)
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, exitCode(err))
	})

	t.Run("bad format", func(t *testing.T) {
		_, _, err := run(t, "--format", "xml", "status")
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, exitCode(err))
	})

	t.Run("unknown identity", func(t *testing.T) {
		_, _, err := run(t, "show", "zypper")
		require.Error(t, err)
		assert.True(t, errors.Is(err, selectable.ErrUnknownIdent))
	})

	t.Run("bad causer", func(t *testing.T) {
		_, _, err := run(t, "--causer", "root", "status")
		require.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, _, err := run(t, "--bogus")
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, exitCode(err))
	})
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zyppsel.toml")
	require.NoError(t, os.WriteFile(path, []byte(`default_causer = "appl_low"`), 0o644))

	out, _, err := run(t, "--config", path, "set", "kdelibs=Install")
	require.NoError(t, err)
	assert.Contains(t, out, "a+ kdelibs")

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`colour = "red"`), 0o644))
	_, _, err = run(t, "--config", bad, "status")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, exitCode(err))
}

func TestVerboseLogsDecisions(t *testing.T) {
	_, stderr, err := run(t, "-v", "set", "kdelibs=Install")
	require.NoError(t, err)
	assert.Contains(t, stderr, "fate changed")
}

func TestRunMainExitCode(t *testing.T) {
	var out, errOut bytes.Buffer
	code := -1
	runMain([]string{"zyppsel", "--no-color", "--manifest", testManifest, "--causer", "solver", "set", "telnet=Del"},
		&out, &errOut, func(c int) { code = c })
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut.String(), "Error: 1 of 1 changes rejected")

	code = -1
	runMain([]string{"zyppsel", "--no-color", "--manifest", testManifest, "status"}, &out, &errOut, func(c int) { code = c })
	assert.Equal(t, -1, code)
}
