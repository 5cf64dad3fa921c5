package ranktree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// consoleStyles bundles the colors used for terminal dumps.
type consoleStyles struct {
	inner *color.Color
	leaf  *color.Color
	meta  *color.Color
}

func defaultStyles() consoleStyles {
	return consoleStyles{
		inner: color.New(color.FgCyan, color.Bold),
		leaf:  color.New(color.FgGreen),
		meta:  color.New(color.Faint),
	}
}

// PrintTree dumps the tree structure to stdout, one node per line, right
// subtree above and left subtree below its parent (read it tilted 90°).
// Lines are clipped to the terminal width where one can be detected.
//
// This is a debugging aid, not a stable output format.
func PrintTree(t *Tree) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	fprintTree(os.Stdout, t, width, defaultStyles())
}

// FprintTree dumps the tree structure to w with a default line width of 80.
func FprintTree(w io.Writer, t *Tree) {
	fprintTree(w, t, 80, defaultStyles())
}

func fprintTree(w io.Writer, t *Tree, width int, styles consoleStyles) {
	if t.Empty() {
		fmt.Fprintln(w, styles.meta.Sprint("(empty tree)"))
		return
	}
	var dump func(n *node, depth int)
	dump = func(n *node, depth int) {
		if !n.isRealNode() {
			return
		}
		dump(n.right, depth+1)
		indent := depth * 3
		if indent > width-16 {
			// deep nodes would run off the line; clip the indentation
			indent = width - 16
		}
		st := styles.inner
		if !n.left.isRealNode() && !n.right.isRealNode() {
			st = styles.leaf
		}
		fmt.Fprintf(w, "%s%s %s\n", strings.Repeat(" ", indent),
			st.Sprintf("%d", n.key),
			styles.meta.Sprintf("(rank %d, size %d)", n.rank, n.size))
		dump(n.left, depth+1)
	}
	dump(t.root, 0)
}
