package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/importer"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/schemas"
)

var (
	importUser   string
	importDryRun bool
	importSchema string
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import applications, contacts and tasks from an export file",
	Long: `Validate a JSON export against schemas/applications_import.schema.json and
create its records for the given user. With --dry-run the file is only validated.
--schema adds a stricter JSON Schema file the export must also satisfy.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importUser, "user", "", "ID of the user receiving the records")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Validate the file without writing")
	importCmd.Flags().StringVar(&importSchema, "schema", "", "Additional JSON Schema file to check the export against")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	if importSchema != "" {
		if err := schemas.ValidateJSON(importSchema, args[0]); err != nil {
			return fmt.Errorf("%s does not match %s: %w", args[0], importSchema, err)
		}
	}

	if importDryRun {
		file, err := importer.New(nil).Parse(data)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d application(s), %d contact(s), %d task(s)\n",
			args[0], len(file.Applications), len(file.Contacts), len(file.Tasks))
		return nil
	}

	userID, err := uuid.Parse(importUser)
	if err != nil {
		return fmt.Errorf("--user must be a user ID: %w", err)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	res, err := importer.New(store).Import(cmd.Context(), userID, data)
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d application(s), %d interview(s), %d contact(s), %d task(s)\n",
		res.Applications, res.Interviews, res.Contacts, res.Tasks)
	return err
}
