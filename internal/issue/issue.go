// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	PathInvalidId
	ModuleNotFoundId
	LoaderNotReadyId
	InvalidArgumentId
	ClassUnresolvableId
	ManifestInvalidId
	CommandNotFoundId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation about this issue type
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue as terminal markdown using the glamour style at
// stylePath ("dark", "light", "notty", "auto" or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.

## Things you can try:
- Show the file that was picked up:
~~~
$ cmdloader config path
~~~

- Regenerate a default configuration:
~~~
$ cmdloader config init --force
~~~

- Check the value types; ` + "`error_policy`" + ` must be "strict" or "soft".`,
	}

	pathInvalidIssue = &Issue{
		id: PathInvalidId,
		mdMsg: `
# Base path cannot be resolved!

The command base path must be an existing directory. Relative paths are
resolved against the working directory.

## Things you can try:
- Set it explicitly:
~~~
$ cmdloader --path ./commands list Users
~~~

- Or persist it in config.cue:
~~~cue
path: "./commands"
~~~`,
	}

	moduleNotFoundIssue = &Issue{
		id: ModuleNotFoundId,
		mdMsg: `
# Module not found!

A module is a subdirectory of the base path. No directory with that name exists.

## Things you can try:
- Check the spelling (module names are case sensitive on most systems)
- List the base path to see the available modules
- Use ` + "`--error-policy soft`" + ` to treat missing modules as empty`,
	}

	loaderNotReadyIssue = &Issue{
		id: LoaderNotReadyId,
		mdMsg: `
# Loader is not configured!

Loading a module needs both a base path and an identifier namespace.

## Things you can try:
- Pass them as flags:
~~~
$ cmdloader --path ./commands --namespace app list users
~~~

- Or set CMDLOADER_PATH and CMDLOADER_NAMESPACE
- Or add them to config.cue:
~~~cue
path:      "./commands"
namespace: "app"
~~~`,
	}

	invalidArgumentIssue = &Issue{
		id: InvalidArgumentId,
		mdMsg: `
# Invalid argument!

Module names must be relative paths that stay inside the base path, and the
source syntax must name a keyword, an extension and a separator.

## Things you can try:
- Use ` + "`users`" + ` or ` + "`users/admin`" + `, never an absolute path or ` + "`..`" + `
- Run ` + "`cmdloader config show`" + ` to inspect the syntax settings`,
	}

	classUnresolvableIssue = &Issue{
		id: ClassUnresolvableId,
		mdMsg: `
# Some files were skipped!

A source file is skipped when it declares no namespace, when its identifier is
not registered, or when the registered type is abstract.

## Things you can try:
- Compare the scan output with the registered identifiers:
~~~
$ cmdloader scan ./commands
$ cmdloader registry
~~~

- Pin identifiers explicitly with a manifest:
~~~
$ cmdloader manifest --write ./commands
~~~`,
	}

	manifestInvalidIssue = &Issue{
		id: ManifestInvalidId,
		mdMsg: `
# Invalid commands.cue!

The identity manifest does not match its schema and was ignored.

## Example:
~~~cue
namespace: "app.users"
exclude: ["wip/**"]
commands: [{file: "create.go", id: "app.users.create"}]
~~~`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not found!

No command with that name was loaded from the module.

## Things you can try:
- List the commands of the module:
~~~
$ cmdloader list <module>
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		pathInvalidIssue.Id():       pathInvalidIssue,
		moduleNotFoundIssue.Id():    moduleNotFoundIssue,
		loaderNotReadyIssue.Id():    loaderNotReadyIssue,
		invalidArgumentIssue.Id():   invalidArgumentIssue,
		classUnresolvableIssue.Id(): classUnresolvableIssue,
		manifestInvalidIssue.Id():   manifestInvalidIssue,
		commandNotFoundIssue.Id():   commandNotFoundIssue,
	}
)

// Values returns every issue ordered by id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
