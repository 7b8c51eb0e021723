package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/lf/pkg/api"
	"github.com/kazuma-desu/lf/pkg/models"
)

var (
	sessionsCmd = &cobra.Command{
		Use:   "sessions",
		Short: "Browse sessions",
	}

	sessionsListOpts struct {
		limit int
		from  string
		to    string
	}

	sessionsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List sessions with optional filters",
		RunE:  runSessionsList,
	}

	sessionsGetCmd = &cobra.Command{
		Use:   "get <session-id>",
		Short: "Get detailed information about a specific session",
		Args:  cobra.ExactArgs(1),
		RunE:  runSessionsGet,
	}
)

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd, sessionsGetCmd)

	f := sessionsListCmd.Flags()
	f.IntVarP(&sessionsListOpts.limit, "limit", "l", 50, "maximum number of results")
	f.StringVar(&sessionsListOpts.from, "from", "", "start time filter (ISO 8601)")
	f.StringVar(&sessionsListOpts.to, "to", "", "end time filter (ISO 8601)")
}

var sessionListColumns = []string{"id", "createdAt", "projectId"}

var sessionDetailFields = []models.Field{
	{Label: "ID", Path: "id"},
	{Label: "Created At", Path: "createdAt"},
	{Label: "Project ID", Path: "projectId"},
	{Label: "Traces", Path: "traces"},
}

func runSessionsList(cmd *cobra.Command, _ []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	from, err := parseTimestamp(sessionsListOpts.from)
	if err != nil {
		return err
	}
	to, err := parseTimestamp(sessionsListOpts.to)
	if err != nil {
		return err
	}
	limit := resolveLimit(sessionsListOpts.limit, cmd.Flags().Changed("limit"))

	var sessions []models.Record
	err = withSpinner(out, "Fetching sessions...", func() error {
		var listErr error
		sessions, listErr = client.ListSessions(ctx, api.SessionFilter{From: from, To: to}, limit)
		return listErr
	})
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}
	return out.RenderTable(sessions, sessionListColumns)
}

func runSessionsGet(_ *cobra.Command, args []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	session, err := client.GetSession(ctx, args[0])
	if err != nil {
		return fmt.Errorf("getting session: %w", err)
	}
	return out.RenderDetail(session, sessionDetailFields)
}
