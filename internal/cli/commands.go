package cli

import (
	"github.com/spf13/cobra"

	"github.com/liangyou/dnvm/pkg/models"
)

const installLong = `Check if dotnet is installed and install it with the official dotnet-install script if not.
--lts takes precedence over --version.

The script download fails unless the server answers 200 OK; an error page is never saved or executed.`

func (a *App) newCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Get current dotnet version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Dispatch(cmd.Context(), models.CurrentCommand{})
		},
	}
}

func (a *App) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed SDK versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Dispatch(cmd.Context(), models.ListCommand{})
		},
	}
}

func (a *App) newUseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "use <version>",
		Short: "Set SDK version",
		Long:  "Write the SDK version to global.json in the home directory. The version is written as given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Dispatch(cmd.Context(), models.UseCommand{Version: args[0]})
		},
	}
}

func (a *App) newInstallCommand() *cobra.Command {
	var (
		lts     bool
		version string
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Check if dotnet is installed and install if not",
		Long:  installLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := models.InstallCommand{LTS: lts}
			if cmd.Flags().Changed("version") {
				c.Version = &version
			}
			return a.Dispatch(cmd.Context(), c)
		},
	}
	cmd.Flags().BoolVar(&lts, "lts", false, "install the LTS channel")
	cmd.Flags().StringVar(&version, "version", "", "specific version to install")
	return cmd
}
