package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/awscmdlet/internal/config"
	"github.com/nandemo-ya/awscmdlet/internal/output"
	"github.com/nandemo-ya/awscmdlet/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Long:  `Print the version, git commit, and build date of awscmdlet.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()

			if cmd.Flags().Changed("output") {
				format, err := output.ParseFormat(config.GetConfig().Output.Format)
				if err != nil {
					return err
				}
				return output.Render(cmd.OutOrStdout(), format, info)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "awscmdlet\n")
			fmt.Fprintf(w, "Version:    %s\n", info.Version)
			fmt.Fprintf(w, "Git commit: %s\n", info.GitCommit)
			fmt.Fprintf(w, "Built:      %s\n", info.BuildDate)
			fmt.Fprintf(w, "Go version: %s\n", info.GoVersion)
			return nil
		},
	}
}
