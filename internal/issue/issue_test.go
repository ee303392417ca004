// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	ids := []Id{
		ConfigLoadFailedId,
		PathInvalidId,
		ModuleNotFoundId,
		LoaderNotReadyId,
		InvalidArgumentId,
		ClassUnresolvableId,
		ManifestInvalidId,
		CommandNotFoundId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true

		if Get(id) == nil {
			t.Errorf("Get(%d) returned nil", id)
		}
	}

	if ConfigLoadFailedId != 1 {
		t.Errorf("ConfigLoadFailedId = %d, want 1", ConfigLoadFailedId)
	}
}

func TestValues_SortedAndComplete(t *testing.T) {
	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), len(issues))
	}
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Errorf("Values() not sorted at %d: %d >= %d", i, values[i-1].Id(), values[i].Id())
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	if got := Get(Id(999)); got != nil {
		t.Errorf("Get(999) = %v, want nil", got)
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	issue := Get(LoaderNotReadyId)
	if !strings.Contains(string(issue.MarkdownMsg()), "CMDLOADER_PATH") {
		t.Errorf("MarkdownMsg() should mention CMDLOADER_PATH, got %q", issue.MarkdownMsg())
	}
}

func TestIssue_LinksAreCopies(t *testing.T) {
	issue := &Issue{id: ModuleNotFoundId, docLinks: []HttpLink{"https://example.com/doc"}}

	links := issue.DocLinks()
	links[0] = "changed"
	if issue.DocLinks()[0] != "https://example.com/doc" {
		t.Error("DocLinks() exposed the internal slice")
	}
	if len(issue.ExtLinks()) != 0 {
		t.Errorf("ExtLinks() = %v, want empty", issue.ExtLinks())
	}
}

func TestIssue_Render(t *testing.T) {
	original := render
	t.Cleanup(func() { render = original })

	var gotMarkdown, gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotMarkdown, gotStyle = in, stylePath
		return "rendered", nil
	}

	issue := &Issue{
		id:       ModuleNotFoundId,
		mdMsg:    "# Title",
		docLinks: []HttpLink{"https://example.com/doc"},
		extLinks: []HttpLink{"https://example.com/ext"},
	}

	out, err := issue.Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "rendered" || gotStyle != "dark" {
		t.Errorf("Render() = %q with style %q", out, gotStyle)
	}
	for _, want := range []string{"# Title", "## See also", "<https://example.com/doc>", "<https://example.com/ext>"} {
		if !strings.Contains(gotMarkdown, want) {
			t.Errorf("markdown missing %q:\n%s", want, gotMarkdown)
		}
	}

	render = func(string, string) (string, error) { return "", errors.New("boom") }
	if _, err := issue.Render("dark"); err == nil {
		t.Error("Render() swallowed the renderer error")
	}
}

func TestIssue_RenderWithGlamour(t *testing.T) {
	out, err := Get(ModuleNotFoundId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Module not found") {
		t.Errorf("Render() output missing title:\n%s", out)
	}
}
