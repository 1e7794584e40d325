package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"devsync/internal/compose"
)

func newScreensCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "screens",
		Short: "List screens, item counts and category tabs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			cats, err := e.catalogs(cmd.Context())
			if err != nil {
				return err
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(writer, "SCREEN\tITEMS\tTABS")
			for _, c := range cats {
				var tabs []string
				for _, tc := range e.composer.Counts(c, compose.DefaultFilter()) {
					tabs = append(tabs, fmt.Sprintf("%s=%d", tc.Category, tc.Count))
				}
				fmt.Fprintf(writer, "%s\t%d\t%s\n", c.Screen, c.Len(), strings.Join(tabs, " "))
			}
			return writer.Flush()
		},
	}
}
