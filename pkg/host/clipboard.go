package host

import (
	"bytes"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// TypeString is the pasteboard type of plain UTF-8 text.
const TypeString = "public.utf8-plain-text"

// Clipboard receives the extracted payload. Write is called at most once
// per extraction and replaces any previous content.
type Clipboard interface {
	Write(payload, typ string) error
}

// FileClipboard writes the payload to a file.
type FileClipboard struct {
	Fs   afero.Fs
	Path string
}

// Write replaces the file content with payload followed by a newline.
func (c *FileClipboard) Write(payload, typ string) error {
	if err := checkType(typ); err != nil {
		return err
	}
	if err := afero.WriteFile(c.Fs, c.Path, []byte(payload+"\n"), 0644); err != nil {
		return errors.Wrapf(err, "write %q", c.Path)
	}
	return nil
}

// WriterClipboard writes the payload to an io.Writer such as stdout.
type WriterClipboard struct {
	W io.Writer
}

// Write writes payload followed by a newline.
func (c *WriterClipboard) Write(payload, typ string) error {
	if err := checkType(typ); err != nil {
		return err
	}
	if _, err := io.WriteString(c.W, payload+"\n"); err != nil {
		return errors.Wrap(err, "write payload")
	}
	return nil
}

// CommandClipboard pipes the payload into the system clipboard tool:
// pbcopy on macOS, clip on Windows and wl-copy, xclip or xsel elsewhere,
// whichever is found first.
type CommandClipboard struct {
	// Command overrides the detected tool when not empty.
	Command []string
}

// Write copies payload to the system clipboard.
func (c *CommandClipboard) Write(payload, typ string) error {
	if err := checkType(typ); err != nil {
		return err
	}

	args := c.Command
	if len(args) == 0 {
		var err error
		if args, err = clipboardCommand(runtime.GOOS, exec.LookPath); err != nil {
			return err
		}
	}

	var stderr bytes.Buffer
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(payload)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "%s: %s", args[0], strings.TrimSpace(stderr.String()))
	}
	return nil
}

// clipboardCommand picks the clipboard tool for goos.
func clipboardCommand(goos string, lookPath func(string) (string, error)) ([]string, error) {
	var candidates [][]string
	switch goos {
	case "darwin":
		candidates = [][]string{{"pbcopy"}}
	case "windows":
		candidates = [][]string{{"clip"}}
	default:
		candidates = [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		}
	}

	for _, c := range candidates {
		if _, err := lookPath(c[0]); err == nil {
			return c, nil
		}
	}
	return nil, errors.Errorf("no clipboard tool found for %s", goos)
}

func checkType(typ string) error {
	if typ != TypeString {
		return errors.Errorf("unsupported clipboard type %q", typ)
	}
	return nil
}
