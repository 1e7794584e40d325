package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"devsync/internal/logging"
	"devsync/internal/tui"
)

func newTUICmd(root *rootOptions) *cobra.Command {
	var screen string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, root, screen)
		},
	}
	cmd.Flags().StringVar(&screen, "screen", "", "screen shown first (default: ui.default_screen)")
	return cmd
}

func runTUI(cmd *cobra.Command, root *rootOptions, screen string) error {
	// Logs go to the configured file so they never draw over the UI.
	e, err := loadEnv(root, nil)
	if err != nil {
		return err
	}
	defer e.Close()

	cats, err := e.catalogs(cmd.Context())
	if err != nil {
		return err
	}
	if screen == "" {
		screen = e.cfg.UI.DefaultScreen
	}

	appModel := tui.NewAppModel(tui.Options{
		Catalogs: cats,
		Composer: e.composer,
		Theme:    tui.ThemeByName(e.cfg.UI.Theme),
		Screen:   screen,
		Logger:   logging.Component("tui"),
	})
	p := tea.NewProgram(&appModel, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	if m, ok := finalModel.(*tui.AppModel); ok && m.Err != nil {
		return m.Err
	}
	return nil
}
