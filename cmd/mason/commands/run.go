package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mason/internal/app"
	"go.trai.ch/mason/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build the project and run the produced executable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			release, _ := cmd.Flags().GetBool("release")
			profile := domain.ProfileDebug
			if release {
				profile = domain.ProfileRelease
			}
			return c.app.Run(cmd.Context(), app.BuildOptions{
				Root:    c.rootDir(cmd),
				Profile: profile,
			})
		},
	}
	cmd.Flags().Bool("release", false, "Build with optimizations instead of debug symbols")
	return cmd
}
