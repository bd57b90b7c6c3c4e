package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/dashboard"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/retry"
)

var (
	statsUser string
	statsDate string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the dashboard of a user in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsUser, "user", "", "ID of the user to summarize")
	statsCmd.Flags().StringVar(&statsDate, "date", "", "Day to compute the dashboard for, YYYY-MM-DD (default: today)")
	_ = statsCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(statsUser)
	if err != nil {
		return fmt.Errorf("--user must be a user ID: %w", err)
	}
	today := time.Now()
	if statsDate != "" {
		if today, err = time.Parse(time.DateOnly, statsDate); err != nil {
			return fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
		}
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

	snap, err := dashboard.NewLoader(store, cfg.MaxRetryAttempts, retry.DefaultBaseDelay).Load(cmd.Context(), userID)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderOverview(dashboard.Build(snap, today)))
	return nil
}

var (
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	levelColors = map[dashboard.Level]lipgloss.Color{
		dashboard.LevelNone:     lipgloss.Color("237"),
		dashboard.LevelLow:      lipgloss.Color("22"),
		dashboard.LevelModerate: lipgloss.Color("28"),
		dashboard.LevelIntense:  lipgloss.Color("40"),
	}
)

// renderOverview lays out the stats, the week heat strip, the timeline and the insights.
func renderOverview(o dashboard.Overview) string {
	stats := strings.Join([]string{
		titleStyle.Render("Candidatures"),
		statLine("Total", o.Stats.Total),
		statLine("En attente", o.Stats.Pending),
		statLine("Entretien", o.Stats.Interview),
		statLine("Acceptées", o.Stats.Accepted),
		statLine("Refusées", o.Stats.Rejected),
		statLine("Actives", o.Stats.Active),
		fmt.Sprintf("%s %d%%", labelStyle.Render("Taux de réponse"), o.Stats.ResponseRate),
	}, "\n")

	var week strings.Builder
	week.WriteString(titleStyle.Render("7 derniers jours"))
	week.WriteString("\n")
	for _, day := range o.Week.Days {
		cell := lipgloss.NewStyle().Background(levelColors[day.Level]).Render("  ")
		fmt.Fprintf(&week, "%s %s %d\n", day.Date, cell, day.Total)
	}
	fmt.Fprintf(&week, "%s %d", labelStyle.Render("Total"), o.Week.Totals.Total)

	var timeline strings.Builder
	timeline.WriteString(titleStyle.Render("Chronologie"))
	for _, group := range o.Timeline {
		fmt.Fprintf(&timeline, "\n%s (%d)", group.Label, len(group.Applications))
		for _, app := range group.Applications {
			fmt.Fprintf(&timeline, "\n  %s · %s · %s", app.Company, app.Position, app.Status)
		}
	}

	var insights strings.Builder
	insights.WriteString(titleStyle.Render("Conseils"))
	for _, in := range o.Insights {
		fmt.Fprintf(&insights, "\n• %s : %s", in.Title, in.Description)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, panelStyle.Render(stats), panelStyle.Render(week.String()))
	return lipgloss.JoinVertical(lipgloss.Left, top, panelStyle.Render(timeline.String()), panelStyle.Render(insights.String()))
}

func statLine(label string, n int) string {
	return fmt.Sprintf("%s %d", labelStyle.Render(label), n)
}
