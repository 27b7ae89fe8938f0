package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/treelab/optree"
)

// Palette maps rendering roles to output colors. It may cover just the
// roles a caller cares about; nil entries render uncolored.
type Palette struct {
	Key   *color.Color // tree keys
	Empty *color.Color // the empty-tree marker
}

func makeDefaultPalette() *Palette {
	return &Palette{
		Key:   color.New(color.FgCyan),
		Empty: color.New(color.FgHiBlack),
	}
}

// Fprint writes an indented rendering of the tree to w, one key per line in
// preorder, each child indented one step below its parent. An empty tree
// renders as a single empty marker line.
//
// linewidth > 0 limits line length; longer labels are cut. A palette of nil
// selects the default colors.
func Fprint[T any](w io.Writer, t *optree.Tree[T], pal *Palette, linewidth int) error {
	if pal == nil {
		pal = makeDefaultPalette()
	}
	if t.Size() == 0 {
		_, err := io.WriteString(w, colorize(pal.Empty, "·")+"\n")
		return err
	}
	var err error
	t.EachPreorder(func(x *T, depth int) {
		if err != nil {
			return
		}
		indent := strings.Repeat("  ", depth)
		label := fmt.Sprintf("%v", *x)
		if linewidth > 0 && len(indent)+len(label) > linewidth {
			label = truncate(label, linewidth-len(indent))
		}
		_, err = io.WriteString(w, indent+colorize(pal.Key, label)+"\n")
	})
	return err
}

// Print outputs the tree to stdout.
//
// If stdout is an interactive terminal, the line width is taken from the
// current terminal size; otherwise lines are not limited.
func Print[T any](t *optree.Tree[T]) error {
	linewidth := 0
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil {
			linewidth = w
		}
	}
	return Fprint(os.Stdout, t, nil, linewidth)
}

// truncate returns the longest prefix of whole runes not exceeding limit
// bytes, so a width cut never splits a multi-byte rune.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(s) <= limit {
		return s
	}
	cut := 0
	for i := range s {
		if i > limit {
			break
		}
		cut = i
	}
	return s[:cut]
}

func colorize(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}
