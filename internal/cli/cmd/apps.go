package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbdesk/internal/cli/styles"
)

const tableWidth = 80

var appsJSON bool

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List installable applications",
	Long: `List the application catalog: built-in applications followed by the
extra applications declared in config.toml.`,
	RunE: runApps,
}

func init() {
	rootCmd.AddCommand(appsCmd)
	appsCmd.Flags().BoolVar(&appsJSON, "json", false, "output as JSON")
}

func runApps(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	apps := app.Catalog.List()

	if appsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(apps)
	}

	rows := make([]table.Row, 0, len(apps))
	for _, d := range apps {
		rows = append(rows, styles.AppRow(d))
	}

	t := styles.NewStyledTable(app.Theme, styles.AppsTableColumns(), rows, tableWidth, len(rows)+1)
	fmt.Println(t.View())

	if len(app.SkippedApps) > 0 {
		fmt.Println(styles.NewConfigRenderer(app.Theme).RenderSkippedApps(app.SkippedApps))
	}
	return nil
}
