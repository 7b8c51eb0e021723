package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/lf/pkg/models"
)

var (
	promptsCmd = &cobra.Command{
		Use:   "prompts",
		Short: "Manage and inspect prompts",
	}

	promptsListOpts struct {
		limit int
	}

	promptsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List all prompts in the project",
		RunE:  runPromptsList,
	}

	promptsGetOpts struct {
		version int
		label   string
	}

	promptsGetCmd = &cobra.Command{
		Use:   "get <name>",
		Short: "Get a specific prompt by name, version, or label",
		Args:  cobra.ExactArgs(1),
		RunE:  runPromptsGet,
	}

	promptsCompileOpts struct {
		vars    []string
		version int
		label   string
	}

	promptsCompileCmd = &cobra.Command{
		Use:   "compile <name>",
		Short: "Compile a prompt with variables",
		Example: `  lf prompts compile greeting --var name=Ada --var tone=formal`,
		Args: cobra.ExactArgs(1),
		RunE: runPromptsCompile,
	}

	promptsDiffOpts struct {
		v1 int
		v2 int
	}

	promptsDiffCmd = &cobra.Command{
		Use:   "diff <name>",
		Short: "Compare two versions of a prompt",
		Args:  cobra.ExactArgs(1),
		RunE:  runPromptsDiff,
	}
)

func init() {
	rootCmd.AddCommand(promptsCmd)
	promptsCmd.AddCommand(promptsListCmd, promptsGetCmd, promptsCompileCmd, promptsDiffCmd)

	promptsListCmd.Flags().IntVarP(&promptsListOpts.limit, "limit", "l", 50, "maximum number of results")

	gf := promptsGetCmd.Flags()
	gf.IntVar(&promptsGetOpts.version, "version", 0, "specific version number")
	gf.StringVar(&promptsGetOpts.label, "label", "", "label (e.g. 'production')")

	cf := promptsCompileCmd.Flags()
	cf.StringArrayVar(&promptsCompileOpts.vars, "var", nil, "variables as key=value pairs")
	cf.IntVar(&promptsCompileOpts.version, "version", 0, "specific version number")
	cf.StringVar(&promptsCompileOpts.label, "label", "", "label (e.g. 'production')")

	df := promptsDiffCmd.Flags()
	df.IntVar(&promptsDiffOpts.v1, "v1", 0, "first version number")
	df.IntVar(&promptsDiffOpts.v2, "v2", 0, "second version number")
	_ = promptsDiffCmd.MarkFlagRequired("v1")
	_ = promptsDiffCmd.MarkFlagRequired("v2")
}

var promptListColumns = []string{"name", "version", "type", "labels", "tags"}

var promptDetailFields = []models.Field{
	{Label: "Name", Path: "name"},
	{Label: "Version", Path: "version"},
	{Label: "Type", Path: "type"},
	{Label: "Labels", Path: "labels"},
	{Label: "Config", Path: "config"},
	{Label: "Content", Path: "prompt"},
}

func runPromptsList(cmd *cobra.Command, _ []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	limit := resolveLimit(promptsListOpts.limit, cmd.Flags().Changed("limit"))

	var prompts []models.Record
	err = withSpinner(out, "Fetching prompts...", func() error {
		var listErr error
		prompts, listErr = client.ListPrompts(ctx, limit)
		return listErr
	})
	if err != nil {
		return fmt.Errorf("listing prompts: %w", err)
	}
	return out.RenderTable(prompts, promptListColumns)
}

func runPromptsGet(_ *cobra.Command, args []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	prompt, err := client.GetPrompt(ctx, args[0], versionParam(promptsGetOpts.version), promptsGetOpts.label)
	if err != nil {
		return fmt.Errorf("getting prompt: %w", err)
	}
	return out.RenderDetail(prompt, promptDetailFields)
}

func runPromptsCompile(_ *cobra.Command, args []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	variables := make(map[string]string, len(promptsCompileOpts.vars))
	for _, v := range promptsCompileOpts.vars {
		key, value, found := strings.Cut(v, "=")
		if !found {
			return fmt.Errorf("invalid variable format %q, expected key=value", v)
		}
		variables[key] = value
	}

	prompt, err := client.GetPrompt(ctx, args[0], versionParam(promptsCompileOpts.version), promptsCompileOpts.label)
	if err != nil {
		return fmt.Errorf("compiling prompt: %w", err)
	}
	return out.RenderJSON(compilePrompt(prompt, variables))
}

func runPromptsDiff(_ *cobra.Command, args []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	name := args[0]
	prompt1, err := client.GetPrompt(ctx, name, versionParam(promptsDiffOpts.v1), "")
	if err != nil {
		return fmt.Errorf("diffing prompt: %w", err)
	}
	prompt2, err := client.GetPrompt(ctx, name, versionParam(promptsDiffOpts.v2), "")
	if err != nil {
		return fmt.Errorf("diffing prompt: %w", err)
	}

	text1 := promptText(prompt1)
	text2 := promptText(prompt2)
	labelV1 := "v" + strconv.Itoa(promptsDiffOpts.v1)
	labelV2 := "v" + strconv.Itoa(promptsDiffOpts.v2)

	if out.JSONMode() {
		return out.RenderJSON(models.Record{
			"name": name,
			"v1":   models.Record{"version": promptsDiffOpts.v1, "content": text1},
			"v2":   models.Record{"version": promptsDiffOpts.v2, "content": text2},
		})
	}
	out.RenderDiff(text1, text2, labelV1, labelV2)
	return nil
}

func versionParam(version int) string {
	if version <= 0 {
		return ""
	}
	return strconv.Itoa(version)
}

// compilePrompt substitutes {{name}} placeholders. Text prompts hold their
// body under "prompt" as a string; chat prompts hold a message list whose
// entries carry a "content" string.
func compilePrompt(prompt models.Record, variables map[string]string) any {
	switch body := prompt["prompt"].(type) {
	case string:
		return substituteVars(body, variables)
	case []any:
		compiled := make([]any, len(body))
		for i, msg := range body {
			m, ok := msg.(map[string]any)
			if !ok {
				compiled[i] = msg
				continue
			}
			out := make(map[string]any, len(m))
			for k, v := range m {
				out[k] = v
			}
			if content, ok := m["content"].(string); ok {
				out["content"] = substituteVars(content, variables)
			}
			compiled[i] = out
		}
		return compiled
	default:
		return body
	}
}

func substituteVars(text string, variables map[string]string) string {
	for key, value := range variables {
		text = strings.ReplaceAll(text, "{{"+key+"}}", value)
	}
	return text
}

// promptText flattens a prompt body to diffable text. Chat prompts are
// rendered as indented JSON so the diff stays line-oriented.
func promptText(prompt models.Record) string {
	switch body := prompt["prompt"].(type) {
	case string:
		return body
	case nil:
		return ""
	default:
		b, err := json.MarshalIndent(body, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", body)
		}
		return string(b)
	}
}
