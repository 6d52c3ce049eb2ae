package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"gansputra.dev/internal/models"
	"gansputra.dev/internal/store"
)

var submissionsLimit int

// submissionsCmd lists recorded contact attempts
var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "List recent contact form submissions",
	Args:  cobra.NoArgs,
	RunE:  runSubmissions,
}

func runSubmissions(cmd *cobra.Command, args []string) error {
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	subs, err := db.Recent(cmd.Context(), submissionsLimit)
	if err != nil {
		return fmt.Errorf("failed to list submissions: %w", err)
	}
	if len(subs) == 0 {
		fmt.Println("No submissions recorded.")
		return nil
	}

	counts, err := db.CountByStatus(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to count submissions: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tSTATUS\tNAME\tEMAIL\tERROR")
	for _, s := range subs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.CreatedAt.Local().Format(time.DateTime), s.Status, s.Name, s.Email, s.Error)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d sent, %d fallback\n", counts[models.StatusSent], counts[models.StatusFallback])
	return nil
}
