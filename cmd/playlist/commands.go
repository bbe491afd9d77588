package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/menu"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "playlist",
		Short: "A simple in-memory music playlist manager",
		Long:  `A simple in-memory music playlist manager with a text menu and a terminal UI.`,
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.Init()
		},
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.runMenu(ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", defaultConfigPath, "path to the YAML config file")

	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}

// runMenu запускает текстовое меню
func (app *Application) runMenu(ctx context.Context) error {
	return menu.New(app.Playlist, app.in, app.out).Run(ctx)
}
