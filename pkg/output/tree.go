package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/kazuma-desu/lf/pkg/models"
)

// RenderTraceTree prints a trace and its observations as a hierarchy, grouped
// by parent observation and ordered by start time within each level.
// Observations referencing a missing parent are simply not reachable from the
// root and are omitted, matching the server's eventual-consistency window.
func (c *Context) RenderTraceTree(trace models.Record, observations []models.Record) {
	name := stringValue(trace["name"])
	if name == "" {
		name = stringValue(trace["id"])
	}
	rootLabel := treeRootStyle.Render(name)
	if id := stringValue(trace["id"]); id != "" {
		rootLabel += " " + treeMetaStyle.Render("("+id+")")
	}

	children := make(map[string][]models.Record)
	for _, obs := range observations {
		parent := stringValue(obs["parentObservationId"])
		children[parent] = append(children[parent], obs)
	}
	for _, siblings := range children {
		sort.SliceStable(siblings, func(i, j int) bool {
			return stringValue(siblings[i]["startTime"]) < stringValue(siblings[j]["startTime"])
		})
	}

	root := tree.Root(rootLabel).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(treeEnumeratorStyle)
	addObservationNodes(root, "", children)

	fmt.Fprintln(c.stdout, root.String())
}

func addObservationNodes(node *tree.Tree, parentID string, children map[string][]models.Record) {
	for _, obs := range children[parentID] {
		child := tree.Root(observationLabel(obs)).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(treeEnumeratorStyle)
		addObservationNodes(child, stringValue(obs["id"]), children)
		node.Child(child)
	}
}

func observationLabel(obs models.Record) string {
	obsType := stringValue(obs["type"])
	if obsType == "" {
		obsType = "SPAN"
	}
	name := stringValue(obs["name"])
	if name == "" {
		name = stringValue(obs["id"])
	}

	var style lipgloss.Style
	var icon string
	switch obsType {
	case "GENERATION":
		style, icon = treeGenerationStyle, "✦"
	case "EVENT":
		style, icon = treeEventStyle, "●"
	default:
		style, icon = treeSpanStyle, "─"
	}

	label := style.Render(icon+" "+name) + " " + treeMetaStyle.Render("("+strings.ToLower(obsType)+")")
	if model := stringValue(obs["model"]); model != "" {
		label += " " + treeModelStyle.Render(model)
	}
	if total := totalTokens(obs); total != "" {
		label += " " + treeMetaStyle.Render(total+" tokens")
	}
	return label
}

// totalTokens reads the generation's token count; the API has reported it
// under both usage.totalTokens and usage.total across versions.
func totalTokens(obs models.Record) string {
	for _, path := range []string{"usage.totalTokens", "usage.total"} {
		if v := obs.Dig(path); v != nil {
			if s := models.FormatValue(v); s != "" && s != "0" {
				return s
			}
		}
	}
	return ""
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
