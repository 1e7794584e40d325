package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"devsync/internal/fixtures"
	"devsync/internal/store"
)

func newSeedCmd(root *rootOptions) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy catalogs into the SQLite database",
		Long:  "Write the built-in demo workspace, or a YAML file given with --from, into the database. Screens in the input replace stored ones.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			cats, err := fixtures.Load()
			if from != "" {
				f, openErr := os.Open(from)
				if openErr != nil {
					return fmt.Errorf("open %s: %w", from, openErr)
				}
				defer f.Close()
				cats, err = fixtures.Decode(f)
			}
			if err != nil {
				return err
			}

			db, err := store.NewSQLiteStore(e.cfg.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			out := cmd.OutOrStdout()
			for _, c := range cats {
				if err := db.SaveCatalog(cmd.Context(), c); err != nil {
					return fmt.Errorf("save %s: %w", c.Screen, err)
				}
				e.log.Info().Str("screen", c.Screen).Int("items", c.Len()).Msg("seeded")
				fmt.Fprintf(out, "%s: %d items\n", c.Screen, c.Len())
			}
			fmt.Fprintf(out, "Seeded %s\n", e.cfg.Database.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "YAML catalog file (default: built-in demo workspace)")
	return cmd
}
