package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"siteprisme.fr/internal/inbox"
	"siteprisme.fr/internal/models"
)

var (
	inboxStatus string
	inboxLimit  int
	inboxJSON   bool
)

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Inspect recorded contact submissions",
}

var inboxListCmd = &cobra.Command{
	Use:   "list",
	Short: "List submissions, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runInboxList,
}

func init() {
	inboxListCmd.Flags().StringVar(&inboxStatus, "status", "", "only show submissions with this status (sent, failed)")
	inboxListCmd.Flags().IntVarP(&inboxLimit, "limit", "n", 50, "maximum number of submissions")
	inboxListCmd.Flags().BoolVar(&inboxJSON, "json", false, "print JSON instead of a table")
	inboxCmd.AddCommand(inboxListCmd)
}

func runInboxList(cmd *cobra.Command, _ []string) error {
	if cfg.Inbox.Path == "" {
		return errors.New("inbox is disabled: set inbox.path or SITEPRISME_INBOX_PATH")
	}
	if inboxStatus != "" && inboxStatus != inbox.StatusSent && inboxStatus != inbox.StatusFailed {
		return fmt.Errorf("unknown status %q", inboxStatus)
	}

	store, err := inbox.Open(cfg.Inbox.Path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entries, err := store.List(cmd.Context(), inboxStatus, inboxLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if inboxJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RECEIVED\tSTATUS\tSOURCE\tNAME\tEMAIL\tTYPE\tERROR")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ReceivedAt.Local().Format("2006-01-02 15:04"),
			e.Status, e.Source, e.Request.Nom, e.Request.Email,
			projectType(e.Request), e.Error)
	}
	return tw.Flush()
}

func projectType(req models.ContactRequest) string {
	if req.TypeProjet == "" {
		return "-"
	}
	return req.TypeProjet
}
