package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type diffKind int

const (
	diffEqual diffKind = iota
	diffDelete
	diffInsert
)

type diffOp struct {
	kind diffKind
	text string
}

// RenderDiff prints a line diff between two prompt versions, unified-diff
// style with +/- prefixes. Identical inputs produce a notice instead of
// empty output.
func (c *Context) RenderDiff(oldText, newText, oldLabel, newLabel string) {
	ops := diffLines(splitLines(oldText), splitLines(newText))

	changed := false
	for _, op := range ops {
		if op.kind != diffEqual {
			changed = true
			break
		}
	}
	if !changed {
		fmt.Fprintln(c.stdout, c.styled(mutedStyle, "No differences found."))
		return
	}

	fmt.Fprintln(c.stdout, c.styled(diffHeaderStyle, "--- "+oldLabel))
	fmt.Fprintln(c.stdout, c.styled(diffHeaderStyle, "+++ "+newLabel))
	for _, op := range ops {
		switch op.kind {
		case diffDelete:
			fmt.Fprintln(c.stdout, c.styled(deletedStyle, "-"+op.text))
		case diffInsert:
			fmt.Fprintln(c.stdout, c.styled(addedStyle, "+"+op.text))
		default:
			fmt.Fprintln(c.stdout, " "+op.text)
		}
	}
}

func (c *Context) styled(style lipgloss.Style, s string) string {
	if c.isTTY {
		return style.Render(s)
	}
	return s
}

// diffLines computes an edit script between two line slices using a longest
// common subsequence table. Prompt bodies are small, so the quadratic table
// is fine.
func diffLines(a, b []string) []diffOp {
	n, m := len(a), len(b)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			switch {
			case a[i] == b[j]:
				lcs[i][j] = lcs[i+1][j+1] + 1
			case lcs[i+1][j] >= lcs[i][j+1]:
				lcs[i][j] = lcs[i+1][j]
			default:
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var ops []diffOp
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			ops = append(ops, diffOp{diffEqual, a[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, diffOp{diffDelete, a[i]})
			i++
		default:
			ops = append(ops, diffOp{diffInsert, b[j]})
			j++
		}
	}
	for ; i < n; i++ {
		ops = append(ops, diffOp{diffDelete, a[i]})
	}
	for ; j < m; j++ {
		ops = append(ops, diffOp{diffInsert, b[j]})
	}
	return ops
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
