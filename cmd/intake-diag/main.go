// Command intake-diag holds the operational diagnostics for the intake
// pipeline: the owner-surrender catalog/schema gap report, an interactive
// probe that posts a live submission, and a stored-application count.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/rmgdri/go-intake/internal/store"
	"github.com/rmgdri/go-intake/pkg/forms/general"
	"github.com/rmgdri/go-intake/pkg/forms/ownersurrender"
)

var rootCmd = &cobra.Command{
	Use:   "intake-diag",
	Short: "Diagnostics for the form intake pipeline",
}

var ownerSurrenderCmd = &cobra.Command{
	Use:   "owner-surrender",
	Short: "Report the gap between the raw field map and the canonical schema",
	Long: `Builds a payload satisfying every raw required key, runs it through
normalization and validation, and reports which canonical-required keys the
current UI does not collect yet. Exits non-zero when the strict schema fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := ownersurrender.Diagnose()
		fmt.Print(d.Summary())
		if !d.Pass {
			os.Exit(1)
		}
		return nil
	},
}

var (
	probeServer string
	probeType   string
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Interactively build and post a submission to a running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		formType := probeType
		if formType == "" {
			if err := survey.AskOne(&survey.Select{
				Message: "Intake type:",
				Options: general.Types,
				Default: "contact",
			}, &formType); err != nil {
				return err
			}
		}

		var name, email, message string
		if err := survey.AskOne(&survey.Input{Message: "Name (optional):"}, &name); err != nil {
			return err
		}
		if err := survey.AskOne(&survey.Input{Message: "Email (optional):"}, &email); err != nil {
			return err
		}
		if err := survey.AskOne(&survey.Multiline{Message: "Message:"}, &message); err != nil {
			return err
		}

		payload := map[string]any{"message": message}
		body := map[string]any{
			"type":    formType,
			"website": "",
			"payload": payload,
		}
		if name != "" {
			body["name"] = name
		}
		if email != "" {
			body["email"] = email
		}

		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}

		url := probeServer + "/api/intake/submit"
		client := &http.Client{Timeout: 15 * time.Second}
		resp, err := client.Post(url, "application/json", bytes.NewReader(raw))
		if err != nil {
			return fmt.Errorf("probe request failed: %w", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n%s\n", resp.Status, url, respBody)
		if resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		return nil
	},
}

var countDBPath string

var countCmd = &cobra.Command{
	Use:   "count [form-key]",
	Short: "Count stored applications, optionally for one form",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formKey := ""
		if len(args) == 1 {
			formKey = args[0]
		}
		db, err := store.Open(countDBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := db.Count(context.Background(), formKey)
		if err != nil {
			return err
		}
		if formKey == "" {
			fmt.Printf("%d applications\n", n)
		} else {
			fmt.Printf("%d applications for %s\n", n, formKey)
		}
		return nil
	},
}

func init() {
	probeCmd.Flags().StringVar(&probeServer, "server", "http://localhost:8080", "Base URL of the intake server")
	probeCmd.Flags().StringVar(&probeType, "type", "", "Intake type (skips the interactive prompt)")
	countCmd.Flags().StringVar(&countDBPath, "db", "intake.db", "Path to the submission database")

	rootCmd.AddCommand(ownerSurrenderCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(countCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
