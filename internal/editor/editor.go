package editor

import (
	"os"
	"os/exec"
	"strings"
)

// DefaultEditor is used when neither settings nor $EDITOR name one.
const DefaultEditor = "vim"

// Editor handles editor resolution and invocation.
type Editor struct {
	configured string
}

// NewEditor creates a new Editor. configured is the editor named in
// settings, or "".
func NewEditor(configured string) *Editor {
	return &Editor{configured: configured}
}

// Resolve returns the editor command to use.
// Order: settings > $EDITOR > vim
func (e *Editor) Resolve() string {
	if e.configured != "" {
		return e.configured
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return DefaultEditor
}

// Edit opens the editor on a temporary copy of content and returns the
// edited text. suffix picks the temp file extension for syntax highlighting.
func (e *Editor) Edit(content, suffix string) (string, error) {
	tmpFile, err := os.CreateTemp("", "freecell-edit-*"+suffix)
	if err != nil {
		return "", err
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		return "", err
	}
	tmpFile.Close()

	// Editors like "code --wait" carry their own arguments.
	parts := strings.Fields(e.Resolve())
	cmd := exec.Command(parts[0], append(parts[1:], tmpPath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", err
	}
	return string(edited), nil
}
