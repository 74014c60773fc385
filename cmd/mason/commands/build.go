package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mason/internal/app"
	"go.trai.ch/mason/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the project incrementally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			release, _ := cmd.Flags().GetBool("release")
			profile := domain.ProfileDebug
			if release {
				profile = domain.ProfileRelease
			}
			_, err := c.app.Build(cmd.Context(), app.BuildOptions{
				Root:    c.rootDir(cmd),
				Profile: profile,
			})
			return err
		},
	}
	cmd.Flags().Bool("release", false, "Build with optimizations instead of debug symbols")
	return cmd
}
