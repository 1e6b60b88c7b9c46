// Command docgen renders offer documents and manages PDF settings without
// running the API server.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newSettingsFileFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "settings",
		Aliases: []string{"s"},
		Usage:   usage,
	}
}

func newStoreFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "store",
		Usage:   "Settings backend: redis or database (defaults to settings.store from config)",
		EnvVars: []string{"SETTINGS_STORE"},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "docgen",
		Usage: "Render offer PDFs and manage PDF settings offline",
		Commands: []*cli.Command{
			{
				Name:  "render",
				Usage: "Render an offer request document to PDF",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "offer",
						Aliases:  []string{"o"},
						Usage:    "Offer JSON file (same shape as POST /api/v1/offers)",
						Required: true,
					},
					newSettingsFileFlag("PDF settings JSON file (defaults when omitted)"),
					&cli.StringFlag{
						Name:  "theme",
						Usage: "Apply a named color theme on top of the settings",
					},
					&cli.StringFlag{
						Name:  "number",
						Usage: "Offer number printed in the title",
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "Output file (defaults to the document filename)",
					},
				},
				Action: renderOffer,
			},
			{
				Name:  "settings",
				Usage: "Inspect and move PDF settings",
				Subcommands: []*cli.Command{
					{
						Name:  "defaults",
						Usage: "Print the default settings document",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "out", Usage: "Write to a file instead of stdout"},
						},
						Action: printDefaults,
					},
					{
						Name:  "validate",
						Usage: "Check a settings file and print the merged result",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true},
						},
						Action: validateSettings,
					},
					{
						Name:  "export",
						Usage: "Write the persisted settings to a file",
						Flags: []cli.Flag{
							newStoreFlag(),
							&cli.StringFlag{Name: "out", Value: "pdf-settings.json"},
						},
						Action: exportSettings,
					},
					{
						Name:  "import",
						Usage: "Replace the persisted settings with a file",
						Flags: []cli.Flag{
							newStoreFlag(),
							&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true},
						},
						Action: importSettings,
					},
				},
			},
			{
				Name:   "themes",
				Usage:  "List the color themes",
				Action: listThemes,
			},
		},
	}
}
