// Package surface provides a registry of commands and flags describing a command-line interface.
//
// Flags are global or scoped to a command path. A flag scoped to a command is visible in that command and in all of
// its subcommands. The registry resolves the active command of an argument list and produces the jsonhelp.State of
// any command context:
//
//	parser, _ := surface.NewParserWith(surface.WithProgramName("ng"), ...)
//	out, err := parser.JSONHelp([]string{"generate", "component", "--help"})
package surface

import (
	"strings"

	"github.com/napalu/jsonhelp"
	"github.com/napalu/jsonhelp/errs"
	"github.com/napalu/jsonhelp/internal/parse"
	"github.com/napalu/jsonhelp/types"
	"github.com/napalu/jsonhelp/types/queue"
	"github.com/napalu/jsonhelp/util"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NewParser returns an empty Parser
func NewParser() *Parser {
	return &Parser{
		registeredCommands:   orderedmap.New[string, *Command](),
		acceptedFlags:        orderedmap.New[string, *FlagInfo](),
		listFunc:             util.DefaultListDelimiter,
		flagNameConverter:    DefaultFlagNameConverter,
		commandNameConverter: DefaultCommandNameConverter,
		maxDepth:             DefaultMaxDepth,
	}
}

// SetProgramName sets the name substituted for "$0" in usage lines. It is also the name of the root context.
func (p *Parser) SetProgramName(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.programName = name
}

// ProgramName returns the program name
func (p *Parser) ProgramName() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.programName
}

// SetDescription sets the description of the root context
func (p *Parser) SetDescription(description, longDescription string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.description = description
	p.longDescription = longDescription
}

// AddCommand registers cmd and all of its subcommands. When parentPath is given cmd is registered as a subcommand
// of the command at that path, which must exist.
func (p *Parser) AddCommand(cmd *Command, parentPath ...string) error {
	if cmd == nil {
		return errs.ErrNilPointer
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	parent := strings.Join(parentPath, " ")
	level := 0
	if parent != "" {
		if _, ok := p.registeredCommands.Get(parent); !ok {
			return errs.ErrCommandNotFound.WithArgs(parent)
		}
		level = len(parentPath)
	}

	pending, err := p.validateCommand(cmd, parent, level)
	if err != nil {
		return err
	}
	for _, c := range pending {
		p.registeredCommands.Set(c.path, c)
	}

	return nil
}

// AddFlag registers a flag. Without commandPath the flag is global, otherwise it is scoped to the command at
// commandPath, which must exist.
func (p *Parser) AddFlag(name string, flag *Flag, commandPath ...string) error {
	if flag == nil {
		return errs.ErrNilPointer
	}
	if name == "" {
		return errs.ErrEmptyFlag
	}
	if flag.TypeOf == types.Empty {
		return errs.ErrMissingOptionType.WithArgs(name)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	path := strings.Join(commandPath, " ")
	if path != "" {
		if _, ok := p.registeredCommands.Get(path); !ok {
			return errs.ErrCommandNotFound.WithArgs(path)
		}
	}

	key := buildPathFlag(name, path)
	if _, exists := p.acceptedFlags.Get(key); exists {
		return errs.ErrFlagAlreadyExists.WithArgs(key)
	}
	if err := p.validateFlag(name, path, flag); err != nil {
		return err
	}

	p.acceptedFlags.Set(key, &FlagInfo{Name: name, CommandPath: path, Flag: flag})

	return nil
}

// HasCommand reports whether a command is registered at path
func (p *Parser) HasCommand(path ...string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.registeredCommands.Get(strings.Join(path, " "))
	return ok
}

// GetFlag returns the flag named name as seen from commandPath. Short names and aliases are resolved.
func (p *Parser) GetFlag(name string, commandPath ...string) (*FlagInfo, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.lookupFlag(name, strings.Join(commandPath, " "))
}

// Resolve returns the path of the command addressed by args. Flags (and the values of non-boolean flags) are
// skipped. Resolution stops at the first operand which is not a subcommand of the current context; such an operand
// is an error when the context expects a subcommand.
func (p *Parser) Resolve(args []string) ([]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	stack := queue.New[string]()
	current := ""
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		if isFlag(arg) {
			name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
			if info, ok := p.lookupFlag(name, current); ok && !hasValue && info.Flag.TypeOf != types.Boolean {
				i++
			}
			continue
		}

		cmd, ok := p.findSubcommand(current, arg)
		if !ok {
			if p.expectsSubcommand(current) {
				return nil, p.commandNotFound(current, arg)
			}
			break
		}
		stack.Push(cmd.Name)
		current = cmd.path
	}

	return stack.Slice(), nil
}

// ResolveString splits s with shell quoting rules and resolves the resulting arguments
func (p *Parser) ResolveString(s string) ([]string, error) {
	args, err := parse.Split(s)
	if err != nil {
		return nil, err
	}

	return p.Resolve(args)
}

// Snapshot returns the configuration tables of the command at commandPath. An empty path denotes the root
// context, named after the program.
func (p *Parser) Snapshot(commandPath []string) (*jsonhelp.State, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	path := strings.Join(commandPath, " ")
	var cmd *Command
	if path != "" {
		c, ok := p.registeredCommands.Get(path)
		if !ok {
			return nil, errs.ErrCommandNotFound.WithArgs(path)
		}
		cmd = c
	}

	state := jsonhelp.NewState(jsonhelp.WithProgramName(p.programName))
	if err := p.snapshotFlags(state, path); err != nil {
		return nil, err
	}
	p.snapshotCommands(state, path)

	if cmd == nil {
		if p.programName != "" {
			state.CommandPath = []string{p.programName}
		}
		state.Usage = []jsonhelp.UsageRecord{{
			Command:     p.rootUsage(),
			Description: jsonhelp.EncodeDescription(p.description, p.longDescription, ""),
		}}
		return state, nil
	}

	state.CommandPath = append([]string(nil), commandPath...)
	state.Usage = []jsonhelp.UsageRecord{{
		Command:     joinNonEmpty(jsonhelp.ProgramPlaceholder, path, cmd.Usage),
		Description: jsonhelp.EncodeDescription(cmd.Description, cmd.LongDescription, cmd.LongDescriptionRelativePath),
	}}

	return state, nil
}

// JSONHelp resolves the active command of args and renders its JSON help
func (p *Parser) JSONHelp(args []string) (string, error) {
	path, err := p.Resolve(args)
	if err != nil {
		return "", err
	}

	state, err := p.Snapshot(path)
	if err != nil {
		return "", err
	}

	return jsonhelp.Usage(state)
}
