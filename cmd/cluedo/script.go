package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tatianab/cluedo-solver/internal/engine"
	"github.com/tatianab/cluedo-solver/internal/logging"
	"github.com/tatianab/cluedo-solver/internal/tui"
	"gopkg.in/yaml.v3"
)

func scriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script FILE",
		Short: "Replay a file of commands (- for stdin) and print the grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}
	cmd.Flags().Bool("strict", false, "stop at the first rejected command")
	cmd.Flags().Bool("history", false, "print the accepted commands and their changes as YAML")
	return cmd
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Open(cfg.LogFile, os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	eng, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		in = f
	}

	strict, _ := cmd.Flags().GetBool("strict")
	rejected, err := replay(eng, in, cmd.ErrOrStderr(), strict)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tui.RenderGrid(eng))
	fmt.Fprintln(out, tui.RenderSuggestion(eng))
	fmt.Fprintln(out)
	fmt.Fprint(out, "Case file\n"+tui.RenderCaseFile(eng))
	fmt.Fprintln(out)
	fmt.Fprint(out, "Known\n"+tui.RenderCounters(eng))

	if history, _ := cmd.Flags().GetBool("history"); history {
		data, err := yaml.Marshal(eng.History())
		if err != nil {
			return fmt.Errorf("encoding history: %w", err)
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, string(data))
	}

	if rejected > 0 {
		return fmt.Errorf("%d command(s) rejected", rejected)
	}
	return nil
}

// replay applies every line of r. Blank lines, # comments and help are
// skipped. Rejected commands are reported on errOut.
func replay(eng *engine.Engine, r io.Reader, errOut io.Writer, strict bool) (int, error) {
	rejected := 0
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if strings.EqualFold(fields[0], "help") {
			continue
		}
		if _, err := eng.ApplyCommand(fields[0], fields[1:]); err != nil {
			rejected++
			fmt.Fprintf(errOut, "line %d: %s: %v\n", lineNo, line, err)
			if strict {
				return rejected, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return rejected, fmt.Errorf("reading script: %w", err)
	}
	return rejected, nil
}
