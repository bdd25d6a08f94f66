package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newReplCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := rt.app
			a.println("Welcome to HandyLink CLI (type 'help' for commands)")
			runREPL(cmd.Context(), rt, a.reader, a.out)
			return nil
		},
	}
}

// runREPL starts a simple read–eval–print loop for the HandyLink CLI.
//
// It reads a line from reader, splits it into words (single and double
// quotes group words) and runs it as a handylink command against a fresh
// command tree, so flag values never carry over between lines. Command
// errors are printed and the loop goes on. The loop exits on EOF or when
// the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows who is signed in and accepts every handylink command
// except repl itself, plus:
//
//	help         list the commands that make sense right now
//	exit | quit  leave the program
func runREPL(ctx context.Context, rt *runtime, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "handylink (%s)> ", promptStatus(ctx, rt.app))

		line, readErr := reader.ReadString('\n')
		args, err := splitArgs(line)
		if err != nil {
			fmt.Fprintln(out, "Error:", err)
			continue
		}

		if len(args) > 0 {
			switch args[0] {
			case "exit", "quit":
				fmt.Fprintln(out, "Bye!")
				return
			case "help":
				fmt.Fprintln(out, helpText(ctx, rt.app))
			default:
				if err := dispatch(ctx, rt, args, out); err != nil {
					fmt.Fprintln(out, "Error:", errorText(err))
				}
			}
		}

		if readErr != nil {
			fmt.Fprintln(out)
			return
		}
	}
}

func dispatch(ctx context.Context, rt *runtime, args []string, out io.Writer) error {
	root := &cobra.Command{
		Use:           "handylink",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(commands(rt)...)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)
	return root.ExecuteContext(ctx)
}

func promptStatus(ctx context.Context, a *App) string {
	if !a.auth.IsAuthenticated(ctx) {
		return "guest"
	}
	if u := a.auth.GetCurrentUser(ctx); u != nil {
		return u.Email
	}
	return "signed in"
}

func helpText(ctx context.Context, a *App) string {
	if a.auth.IsAuthenticated(ctx) {
		return "Available commands: status, profile show|update, jobs list|show|create|apply|applications, " +
			"providers list|show|become, payments history|pay, reviews list|create, notifications list|read, " +
			"refresh, logout, exit\nUse '<command> --help' for flags."
	}
	return "Available commands: login, register, verify, forgot-password, reset-password, status, exit\n" +
		"Use '<command> --help' for flags."
}

var errUnterminatedQuote = errors.New("unterminated quote")

// splitArgs splits line into words. Quotes group words and are removed;
// there are no escapes.
func splitArgs(line string) ([]string, error) {
	var (
		args   []string
		cur    strings.Builder
		inWord bool
		quote  rune
	)
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if inWord {
				args = append(args, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, errUnterminatedQuote
	}
	if inWord {
		args = append(args, cur.String())
	}
	return args, nil
}
