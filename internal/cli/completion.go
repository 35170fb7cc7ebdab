package cli

import (
	"fmt"
	"os"

	"github.com/amterp/ra"
)

// registerCompletion adds the "freecell completion <shell>" command.
func registerCompletion(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("completion")
	cmd.SetDescription("Output shell completion script")

	ctx.CompletionShell, _ = ra.NewString("shell").
		SetUsage("Shell type").
		SetEnumConstraint([]string{"bash", "zsh"}).
		Register(cmd)

	ctx.CompletionUsed, _ = parent.RegisterCmd(cmd)
}

// runCompletion outputs the shell completion script to stdout.
func runCompletion(shell string, rootCmd *ra.Cmd) {
	if err := writeCompletion(shell, rootCmd, os.Stdout); err != nil {
		Fatal(err)
	}
}

func writeCompletion(shell string, rootCmd *ra.Cmd, w *os.File) error {
	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(w)
	case "zsh":
		err = rootCmd.GenZshCompletion(w)
	default:
		return fmt.Errorf("unsupported shell: %s (supported: bash, zsh)", shell)
	}
	if err != nil {
		return fmt.Errorf("failed to generate completion script: %w", err)
	}
	return nil
}
