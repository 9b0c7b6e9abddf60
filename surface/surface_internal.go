package surface

import (
	"sort"
	"strings"

	"github.com/napalu/jsonhelp"
	"github.com/napalu/jsonhelp/errs"
	"github.com/napalu/jsonhelp/types"
	"github.com/napalu/jsonhelp/types/queue"
	"github.com/napalu/jsonhelp/util"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const maxSuggestionDistance = 2

type pendingCommand struct {
	cmd    *Command
	parent string
	level  int
}

// validateCommand walks cmd breadth-first and returns the commands to register with their paths assigned
func (p *Parser) validateCommand(cmd *Command, parent string, level int) ([]*Command, error) {
	q := queue.New[pendingCommand]()
	q.Enqueue(pendingCommand{cmd: cmd, parent: parent, level: level})

	var (
		validated []*Command
		paths     []string
		seen      = map[string]struct{}{}
	)
	for q.Len() > 0 {
		next, _ := q.Dequeue()
		if next.level > p.maxDepth {
			return nil, errs.ErrRecursionDepthExceeded.WithArgs(p.maxDepth)
		}
		if next.cmd.Name == "" {
			return nil, errs.ErrEmptyCommandName
		}

		path := joinNonEmpty(next.parent, next.cmd.Name)
		if _, exists := p.registeredCommands.Get(path); exists {
			return nil, errs.ErrCommandAlreadyExists.WithArgs(path)
		}
		if _, exists := seen[path]; exists {
			return nil, errs.ErrCommandAlreadyExists.WithArgs(path)
		}
		seen[path] = struct{}{}
		validated = append(validated, next.cmd)
		paths = append(paths, path)

		for i := range next.cmd.Subcommands {
			q.Enqueue(pendingCommand{cmd: &next.cmd.Subcommands[i], parent: path, level: next.level + 1})
		}
	}

	for i, c := range validated {
		c.path = paths[i]
	}

	return validated, nil
}

// typedDefault converts the default of flag to a literal of its type
func (p *Parser) typedDefault(flag *Flag) (any, error) {
	if flag.TypeOf == types.Array && flag.DefaultList != nil {
		if len(flag.DefaultList) == 0 {
			return nil, nil
		}
		return append([]string(nil), flag.DefaultList...), nil
	}

	return util.TypedDefault(flag.DefaultValue, flag.TypeOf, flag.TimeValued, p.listFunc)
}

func (p *Parser) validateFlag(name, path string, flag *Flag) error {
	if flag.Position != nil && *flag.Position < 0 {
		return errs.ErrNegativePosition.WithArgs(name)
	}
	if _, err := p.typedDefault(flag); err != nil {
		return errs.ErrInvalidDefault.WithArgs(flag.DefaultValue, name).Wrap(err)
	}
	if _, err := util.TypedChoices(flag.AcceptedValues, flag.TypeOf); err != nil {
		return errs.ErrInvalidTagValue.WithArgs("accepted", name).Wrap(err)
	}

	for pair := p.acceptedFlags.Oldest(); pair != nil; pair = pair.Next() {
		existing := pair.Value
		if !scopesOverlap(existing.CommandPath, path) {
			continue
		}
		if flag.Short != "" && existing.Flag.Short == flag.Short && existing.Name != name {
			return errs.ErrShortFlagConflict.WithArgs(flag.Short, name, existing.Name)
		}
		if existing.CommandPath == path && flag.Position != nil && existing.Flag.Position != nil &&
			*flag.Position == *existing.Flag.Position {
			return errs.ErrDuplicatePosition.WithArgs(*flag.Position, name, existing.Name)
		}
	}

	return nil
}

// lookupFlag finds the innermost flag visible from path whose name, short name or alias is name
func (p *Parser) lookupFlag(name, path string) (*FlagInfo, bool) {
	var found *FlagInfo
	for pair := p.acceptedFlags.Oldest(); pair != nil; pair = pair.Next() {
		fi := pair.Value
		if !inScope(fi.CommandPath, path) {
			continue
		}
		if fi.Name != name && fi.Flag.Short != name && util.IndexOf(fi.Flag.Aliases, name) < 0 {
			continue
		}
		if found == nil || depth(fi.CommandPath) > depth(found.CommandPath) {
			found = fi
		}
	}

	return found, found != nil
}

// visibleFlags returns the flags visible from path in registration order. Flags redefined in a nested command
// shadow the outer definition.
func (p *Parser) visibleFlags(path string) *orderedmap.OrderedMap[string, *FlagInfo] {
	visible := orderedmap.New[string, *FlagInfo]()
	for pair := p.acceptedFlags.Oldest(); pair != nil; pair = pair.Next() {
		fi := pair.Value
		if !inScope(fi.CommandPath, path) {
			continue
		}
		if existing, ok := visible.Get(fi.Name); ok && depth(existing.CommandPath) > depth(fi.CommandPath) {
			continue
		}
		visible.Set(fi.Name, fi)
	}

	return visible
}

func (p *Parser) children(path string) []*Command {
	var children []*Command
	for pair := p.registeredCommands.Oldest(); pair != nil; pair = pair.Next() {
		if parentOf(pair.Key) == path {
			children = append(children, pair.Value)
		}
	}

	return children
}

func (p *Parser) findSubcommand(path, name string) (*Command, bool) {
	for _, c := range p.children(path) {
		if c.Name == name || util.IndexOf(c.Aliases, name) >= 0 {
			return c, true
		}
	}

	return nil, false
}

// expectsSubcommand reports whether an operand in the context at path must name a subcommand
func (p *Parser) expectsSubcommand(path string) bool {
	children := p.children(path)
	if len(children) == 0 {
		return false
	}
	for _, c := range children {
		if c.IsDefault {
			return false
		}
	}
	if path != "" {
		if cmd, ok := p.registeredCommands.Get(path); ok && cmd.Usage != "" {
			return false
		}
	}
	for pair := p.visibleFlags(path).Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Flag.Position != nil {
			return false
		}
	}

	return true
}

func (p *Parser) commandNotFound(path, name string) error {
	type candidate struct {
		name     string
		distance int
	}

	var candidates []candidate
	for _, c := range p.children(path) {
		if c.Hidden {
			continue
		}
		for _, n := range append([]string{c.Name}, c.Aliases...) {
			d := levenshtein.DistanceForStrings([]rune(name), []rune(n), levenshtein.DefaultOptions)
			if d <= maxSuggestionDistance {
				candidates = append(candidates, candidate{name: n, distance: d})
			}
		}
	}

	if len(candidates) == 0 {
		return errs.ErrCommandNotFound.WithArgs(name)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].name < candidates[j].name
	})
	suggestions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, c.name)
	}

	return errs.ErrCommandNotFoundWithSuggestions.WithArgs(name, strings.Join(suggestions, ", "))
}

func (p *Parser) snapshotFlags(state *jsonhelp.State, path string) error {
	type positional struct {
		name string
		pos  int
	}
	var positionals []positional

	for pair := p.visibleFlags(path).Oldest(); pair != nil; pair = pair.Next() {
		name, flag := pair.Key, pair.Value.Flag

		jsonhelp.WithOption(flag.TypeOf, name)(state)
		aliases := flag.Aliases
		if flag.Short != "" {
			aliases = append([]string{flag.Short}, aliases...)
		}
		if len(aliases) > 0 {
			state.Aliases[name] = aliases
		}
		if flag.Hidden {
			state.Hidden = append(state.Hidden, name)
		}

		def, err := p.typedDefault(flag)
		if err != nil {
			return errs.ErrInvalidDefault.WithArgs(flag.DefaultValue, name).Wrap(err)
		}
		if def != nil {
			state.Defaults[name] = def
		}

		choices, err := util.TypedChoices(flag.AcceptedValues, flag.TypeOf)
		if err != nil {
			return errs.ErrInvalidTagValue.WithArgs("accepted", name).Wrap(err)
		}
		if len(choices) > 0 {
			state.Choices[name] = choices
		}

		if flag.Required {
			state.Required[name] = true
		}
		if flag.Deprecated.IsDeprecated() {
			state.Deprecated[name] = flag.Deprecated
		}
		if flag.Description != "" {
			state.Descriptions[name] = flag.Description
		}
		if flag.Position != nil {
			positionals = append(positionals, positional{name: name, pos: *flag.Position})
		}
	}

	sort.SliceStable(positionals, func(i, j int) bool {
		return positionals[i].pos < positionals[j].pos
	})
	for _, pos := range positionals {
		state.Positional = append(state.Positional, pos.name)
	}

	return nil
}

func (p *Parser) snapshotCommands(state *jsonhelp.State, path string) {
	for _, c := range p.children(path) {
		if c.Hidden {
			continue
		}
		state.Commands = append(state.Commands, jsonhelp.CommandRecord{
			Command:     joinNonEmpty(c.Name, c.Usage),
			Description: c.Description,
			IsDefault:   c.IsDefault,
			Aliases:     c.Aliases,
			Deprecated:  c.Deprecated,
		})
	}
}

func (p *Parser) rootUsage() string {
	if len(p.children("")) > 0 {
		return joinNonEmpty(jsonhelp.ProgramPlaceholder, "<command>")
	}

	return jsonhelp.ProgramPlaceholder
}

func buildPathFlag(name, path string) string {
	if path == "" {
		return name
	}

	return name + "@" + path
}

func joinNonEmpty(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}

	return strings.Join(nonEmpty, " ")
}

func parentOf(path string) string {
	idx := strings.LastIndex(path, " ")
	if idx < 0 {
		return ""
	}

	return path[:idx]
}

func depth(path string) int {
	if path == "" {
		return 0
	}

	return strings.Count(path, " ") + 1
}

// inScope reports whether a flag scoped to flagPath is visible from path
func inScope(flagPath, path string) bool {
	return flagPath == "" || flagPath == path || strings.HasPrefix(path, flagPath+" ")
}

func scopesOverlap(a, b string) bool {
	return inScope(a, b) || inScope(b, a)
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}
