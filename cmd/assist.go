package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/registration/agent"
	"github.com/fatih/color"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	filters filterFlags
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `vreg assist [filters] [<question>...]

  Starts an interactive session with an assistant answering questions about
  the filtered dataset. The words after the flags are asked first.

  The Gemini client is configured from the environment, set GOOGLE_API_KEY
  (or GEMINI_API_KEY) or the Vertex AI variables.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) { c.filters.SetFlags(f) }

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, status := loadOrFail(ctx, &c.filters)
	if status != subcommands.ExitSuccess {
		return status
	}

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(stderr, "Error: initializing Gemini's client: %v\n", err)
		return subcommands.ExitFailure
	}

	a := agent.New(stdout, os.Stdin, agent.NewAnalyst(ds), agent.NewResearcher())
	a.Render = terminalRenderer()

	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintf(stderr, "Error: agent failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// terminalRenderer returns a markdown renderer for the terminal, nil when stdout is not one.
func terminalRenderer() func(string) string {
	if color.NoColor {
		return nil
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return nil
	}
	return func(md string) string {
		out, err := r.Render(md)
		if err != nil {
			return md
		}
		return out
	}
}
