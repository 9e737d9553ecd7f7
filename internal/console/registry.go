// Package console implements the interactive explorer commands.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	service "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/pkg/logger"
)

// Sessions opens explorer sessions.
type Sessions interface {
	NewSession(ctx context.Context) (*service.Session, error)
}

// Command defines a console command with its handler.
type Command struct {
	Name        string
	ShortName   string
	Group       string
	Description string
	Usage       string
	Handler     func(ctx context.Context, a args) error
}

// Registry manages command registration and execution. It holds one session
// for its lifetime; reset replaces it.
type Registry struct {
	sessions Sessions
	session  *service.Session
	commands map[string]*Command
	groups   []string
	p        printer
	log      logger.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithOutput sets where results are printed.
func WithOutput(w io.Writer) Option {
	return func(r *Registry) {
		if w != nil {
			r.p.out = w
		}
	}
}

// WithColor toggles ANSI colors.
func WithColor(enabled bool) Option {
	return func(r *Registry) {
		r.p.color = enabled
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry creates a registry with every explorer command.
func NewRegistry(sessions Sessions, opts ...Option) *Registry {
	r := &Registry{
		sessions: sessions,
		commands: make(map[string]*Command),
		p:        printer{out: os.Stdout, color: true},
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.registerPokemonCommands()
	r.registerNBACommands()
	r.registerSessionCommands()

	r.Register(&Command{
		Name:        "help",
		ShortName:   "?",
		Group:       "Utility",
		Description: "Show available commands",
		Usage:       "help [command]",
		Handler:     r.helpHandler,
	})
	r.Register(&Command{
		Name:        "exit",
		ShortName:   "x",
		Group:       "Utility",
		Description: "Exit the console",
		Usage:       "exit",
		Handler: func(context.Context, args) error {
			return ErrExit
		},
	})
	r.commands["quit"] = r.commands["exit"]

	return r
}

// Register adds cmd under its name and short name.
func (r *Registry) Register(cmd *Command) {
	if _, seen := r.commands[cmd.Name]; !seen {
		found := false
		for _, g := range r.groups {
			if g == cmd.Group {
				found = true
				break
			}
		}
		if !found {
			r.groups = append(r.groups, cmd.Group)
		}
	}
	r.commands[cmd.Name] = cmd
	if cmd.ShortName != "" {
		r.commands[cmd.ShortName] = cmd
	}
}

// Execute runs one input line. Failures are printed as a banner and never
// end the loop; only exit returns ErrExit.
func (r *Registry) Execute(ctx context.Context, line string) error {
	tokens, err := tokenize(line)
	if err != nil {
		r.p.banner(err)
		return nil
	}
	if len(tokens) == 0 {
		return nil
	}

	cmd, exists := r.commands[tokens[0]]
	if !exists {
		r.p.banner(fmt.Errorf("%w: %s", ErrUnknownCommand, tokens[0]))
		r.p.line("Type 'help' for available commands")
		return nil
	}

	err = cmd.Handler(ctx, parseArgs(tokens[1:]))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrExit):
		return ErrExit
	case errors.Is(err, ErrUsage):
		r.p.banner(err)
		r.p.line("Usage: %s", cmd.Usage)
	default:
		r.log.Debug(ctx, "command failed", logger.String("command", cmd.Name), logger.Error(err))
		r.p.banner(err)
	}
	return nil
}

// SessionID is the current session's ID, empty before the first lookup.
func (r *Registry) SessionID() string {
	if r.session == nil {
		return ""
	}
	return r.session.ID()
}

// current returns the open session, opening one on first use.
func (r *Registry) current(ctx context.Context) (*service.Session, error) {
	if r.session != nil {
		return r.session, nil
	}
	s, err := r.sessions.NewSession(ctx)
	if err != nil {
		return nil, err
	}
	r.session = s
	r.log.Debug(ctx, "session opened", logger.String("session", s.ID()))
	return s, nil
}

func (r *Registry) registerSessionCommands() {
	r.Register(&Command{
		Name:        "session",
		ShortName:   "s",
		Group:       "Session",
		Description: "Show the session's cache usage",
		Usage:       "session",
		Handler: func(ctx context.Context, _ args) error {
			s, err := r.current(ctx)
			if err != nil {
				return err
			}
			st := s.Stats()
			r.p.title("Session " + st.ID)
			r.p.table([]string{"Opened", "Entries", "Hits", "Misses"}, [][]string{{
				st.OpenedAt.Format("2006-01-02 15:04:05"),
				fmt.Sprint(st.Entries), fmt.Sprint(st.Hits), fmt.Sprint(st.Misses),
			}})
			return nil
		},
	})
	r.Register(&Command{
		Name:        "reset",
		ShortName:   "r",
		Group:       "Session",
		Description: "Drop the session and its cached lookups",
		Usage:       "reset",
		Handler: func(ctx context.Context, _ args) error {
			r.session = nil
			s, err := r.current(ctx)
			if err != nil {
				return err
			}
			r.p.note("New session " + s.ID())
			return nil
		},
	})
}

func (r *Registry) helpHandler(_ context.Context, a args) error {
	if name := a.first(); name != "" {
		cmd, exists := r.commands[name]
		if !exists {
			return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
		}
		r.p.line("")
		r.p.line("%s - %s", r.p.paint(cyan, cmd.Name), cmd.Description)
		if cmd.ShortName != "" {
			r.p.line("Short form: %s", r.p.paint(cyan, cmd.ShortName))
		}
		r.p.line("Usage: %s", cmd.Usage)
		return nil
	}

	byGroup := map[string][]*Command{}
	for key, cmd := range r.commands {
		if key == cmd.Name {
			byGroup[cmd.Group] = append(byGroup[cmd.Group], cmd)
		}
	}
	r.p.line("")
	r.p.title("Available Commands:")
	for _, g := range r.groups {
		cmds := byGroup[g]
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
		r.p.line("")
		r.p.note(g + " Commands:")
		for _, cmd := range cmds {
			short := "   "
			if cmd.ShortName != "" {
				short = "[" + cmd.ShortName + "]"
			}
			r.p.line("  %s %-12s %s", short, cmd.Name, cmd.Description)
		}
	}
	r.p.line("")
	r.p.line("Type 'help <command>' for detailed usage")
	return nil
}
