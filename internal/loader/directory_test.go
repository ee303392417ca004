// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/invowk/cmdloader/internal/testutil"
	"github.com/invowk/cmdloader/internal/testutil/commandtest"
	"github.com/invowk/cmdloader/pkg/command"
	"github.com/invowk/cmdloader/pkg/registry"
)

func TestLoadDirectory_MixedFiles(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"CmdA.src": "<?php\nnamespace NS;\n\nclass CmdA extends Command {}\n",
		"CmdB.src": "<?php\nnamespace NS;\n\nabstract class CmdB extends Command {}\n",
		"CmdC.src": "<?php\n\nclass CmdC extends Command {}\n",
	})

	reg := registry.New()
	commandtest.Register(reg, `NS\CmdA`, "cmd-a")
	commandtest.Register(reg, `NS\CmdB`, "cmd-b", commandtest.Abstract())

	logger, logs := testLogger()
	res := LoadDirectory(dir, WithSyntax(phpSyntax()), WithRegistry(reg), WithLogger(logger))

	assertNames(t, res.Commands, "cmd-a")
	if got := res.Commands[0].(*commandtest.Stub).ID; got != `NS\CmdA` {
		t.Errorf("loaded %q, want %q", got, `NS\CmdA`)
	}
	if got := res.Skipped(); got != 2 {
		t.Errorf("Skipped() = %d, want 2", got)
	}
	if got, want := diagnosticCodes(res.Diagnostics), []string{CodeClassAbstract, CodeNamespaceNotFound}; fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("diagnostic codes = %v, want %v", got, want)
	}
	if res.HasErrors() {
		t.Error("HasErrors() = true, want false")
	}
	if !strings.Contains(logs.String(), "CmdC.src") {
		t.Errorf("log output does not mention CmdC.src:\n%s", logs.String())
	}
}

func TestLoadDirectory_EveryValidFileLoads(t *testing.T) {
	t.Parallel()

	const n = 7
	files := make(map[string]string, n)
	reg := registry.New()
	for i := range n {
		name := fmt.Sprintf("cmd%d", i)
		files[name+".go"] = "package tools\n"
		commandtest.Register(reg, "tools."+name, name)
	}
	dir := testutil.WriteTree(t, t.TempDir(), files)

	logger, _ := testLogger()
	res := LoadDirectory(dir, WithRegistry(reg), WithLogger(logger))

	if len(res.Commands) != n {
		t.Fatalf("loaded %d commands, want %d", len(res.Commands), n)
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("diagnostics = %+v, want none", res.Diagnostics)
	}
}

func TestLoadDirectory_UnknownIdentifier(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"known.go":   "package tools\n",
		"unknown.go": "package tools\n",
	})
	reg := registry.New()
	commandtest.Register(reg, "tools.known", "known")

	logger, logs := testLogger()
	res := LoadDirectory(dir, WithRegistry(reg), WithLogger(logger))

	assertNames(t, res.Commands, "known")
	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %+v, want one", res.Diagnostics)
	}
	d := res.Diagnostics[0]
	if d.Code != CodeClassUnresolvable || d.ID != "tools.unknown" || d.Severity != SeverityWarning {
		t.Errorf("diagnostic = %+v", d)
	}
	if !errors.Is(d.Cause, ErrClassUnresolvable) || !errors.Is(d.Cause, registry.ErrUnknownType) {
		t.Errorf("Cause = %v, want ErrClassUnresolvable wrapping ErrUnknownType", d.Cause)
	}
	if !strings.Contains(logs.String(), "unable to load tools.unknown, skipping") {
		t.Errorf("log output = %q", logs.String())
	}
}

func TestLoadDirectory_NotConstructible(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"nil.go":   "package tools\n",
		"panic.go": "package tools\n",
	})
	reg := registry.New()
	commandtest.Register(reg, "tools.nil", "nil", commandtest.WithFactory(func() command.Command { return nil }))
	commandtest.Register(reg, "tools.panic", "panic", commandtest.WithFactory(func() command.Command { panic("boom") }))

	logger, _ := testLogger()
	res := LoadDirectory(dir, WithRegistry(reg), WithLogger(logger))

	if len(res.Commands) != 0 {
		t.Errorf("loaded %v, want nothing", commandNames(res.Commands))
	}
	for _, d := range res.Diagnostics {
		if d.Code != CodeClassNotConstructible {
			t.Errorf("diagnostic code = %q, want %q", d.Code, CodeClassNotConstructible)
		}
	}
	if res.Skipped() != 2 {
		t.Errorf("Skipped() = %d, want 2", res.Skipped())
	}
}

func TestLoadDirectory_UnresolvableRoot(t *testing.T) {
	t.Parallel()

	logger, _ := testLogger()
	res := LoadDirectory("missing", WithWorkDir(t.TempDir()), WithRegistry(registry.New()), WithLogger(logger))

	if len(res.Commands) != 0 {
		t.Errorf("loaded %d commands, want 0", len(res.Commands))
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Code != CodeDirectoryUnresolvable {
		t.Fatalf("diagnostics = %+v, want one %s", res.Diagnostics, CodeDirectoryUnresolvable)
	}
	if res.Diagnostics[0].Severity != SeverityInfo {
		t.Errorf("severity = %q, want info", res.Diagnostics[0].Severity)
	}
	if !errors.Is(res.Diagnostics[0].Cause, ErrPathInvalid) {
		t.Errorf("Cause = %v, want ErrPathInvalid", res.Diagnostics[0].Cause)
	}
}

func TestLoadDirectory_InvalidSyntax(t *testing.T) {
	t.Parallel()

	logger, _ := testLogger()
	res := LoadDirectory(t.TempDir(), WithSyntax(Syntax{}), WithLogger(logger))

	if !res.HasErrors() || res.Diagnostics[0].Code != CodeSyntaxInvalid {
		t.Errorf("diagnostics = %+v, want %s error", res.Diagnostics, CodeSyntaxInvalid)
	}
}

const pinningManifest = `namespace: "NS"
exclude: ["Draft.src"]
commands: [{file: "CmdA.src", id: "Pinned\\A"}]
`

func TestLoadDirectory_Manifest(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"CmdA.src":       "<?php\nnamespace Ignored;\n",
		"CmdB.src":       "<?php\n// no declaration\n",
		"Draft.src":      "<?php\nnamespace NS;\n",
		ManifestFileName: pinningManifest,
	})

	reg := registry.New()
	commandtest.Register(reg, `Pinned\A`, "a")
	commandtest.Register(reg, `NS\CmdB`, "b")
	commandtest.Register(reg, `NS\Draft`, "draft")

	logger, _ := testLogger()
	res := LoadDirectory(dir, WithSyntax(phpSyntax()), WithRegistry(reg), WithLogger(logger))

	assertNames(t, res.Commands, "a", "b")
	if len(res.Diagnostics) != 0 {
		t.Errorf("diagnostics = %+v, want none", res.Diagnostics)
	}
}

func TestLoadDirectory_InvalidManifestIsIgnored(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteTree(t, t.TempDir(), map[string]string{
		"hello.go":       "package tools\n",
		ManifestFileName: "namespace: 42\n",
	})
	reg := registry.New()
	commandtest.Register(reg, "tools.hello", "hello")

	logger, _ := testLogger()
	res := LoadDirectory(dir, WithRegistry(reg), WithLogger(logger))

	assertNames(t, res.Commands, "hello")
	if got := diagnosticCodes(res.Diagnostics); len(got) != 1 || got[0] != CodeManifestInvalid {
		t.Errorf("diagnostic codes = %v, want [%s]", got, CodeManifestInvalid)
	}
}
