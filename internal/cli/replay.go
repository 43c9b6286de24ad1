package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todos/internal/app"
	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/script"
)

type replayFlags struct {
	json  bool
	group bool
	trace bool
}

func newReplayCmd(e *env) *cobra.Command {
	var flags replayFlags
	cmd := &cobra.Command{
		Use:   "replay [file]",
		Short: "Apply an event script to a fresh list and print the result",
		Long: `Replay reads one event per line from file (or stdin) and applies them
to an empty list, then prints the final list.

Events:
  add.name <text>           add.description <text>     add.submit
  select <id>               edit.name <text>           edit.description <text>
  save    toggle    delete    back                    toggle-item <id>

Text may be Go-quoted ("" for empty). Lines starting with # are ignored.`,
		Example: `  printf 'add.name Buy milk\nadd.submit\n' | todo replay
  todo replay --group session.events`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usagef("replay takes at most one file, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			group := e.cfg.UI.Group
			if cmd.Flags().Changed("group") {
				group = flags.group
			}
			return runReplay(cmd, e, args, flags, group)
		},
	}
	cmd.Flags().BoolVar(&flags.json, "json", false, "print the final state as JSON")
	cmd.Flags().BoolVar(&flags.group, "group", false, "group output by pending/done")
	cmd.Flags().BoolVar(&flags.trace, "trace", false, "print the view after every event")
	return cmd
}

func runReplay(cmd *cobra.Command, e *env, args []string, flags replayFlags, group bool) error {
	name, in := "stdin", cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		name, in = args[0], f
	}

	lines, err := script.Parse(name, in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sess := app.NewSession(e.log)
	var trace func(script.Line)
	if flags.trace {
		trace = func(ln script.Line) {
			fmt.Fprintf(out, "%3d %-28s -> %s\n", ln.Num, ln.Event.String(), sess.View())
		}
	}
	if err := script.Replay(sess, lines, trace); err != nil {
		return err
	}
	done, pending := sess.Store().Stats()
	e.log.Info("replayed script", "name", name, "events", len(lines),
		"todos", sess.Store().Len(), "done", done, "pending", pending)

	snap := sess.Snapshot()
	if flags.json {
		return writeJSON(out, snap)
	}
	printList(out, snap.Todos, group)
	return nil
}

type jsonState struct {
	View  string       `json:"view"`
	Todos []model.Todo `json:"todos"`
}

func writeJSON(w io.Writer, snap app.Snapshot) error {
	todos := snap.Todos
	if todos == nil {
		todos = []model.Todo{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonState{View: snap.View.String(), Todos: todos}); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}
