package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/menu"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the playlist",
		Long:  `Print the songs of the playlist built from the config file and its total length.`,
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			app.listSongs()
		},
	}
}

func (app *Application) listSongs() {
	menu.RenderPlaylist(app.out, app.Playlist)
	fmt.Fprintf(app.out, "\n📋 %s\n", app.Playlist)
}
