package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nguyentranbao-ct/catalog-console/internal/app"
	"github.com/nguyentranbao-ct/catalog-console/internal/server"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "catalog-console",
	Short:         "Admin console for a remote product catalog",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		app.Invoke(
			server.StartServer,
		).Run()
	},
}

func init() {
	rootCmd.AddCommand(newExportCmd())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.MustNamed("cmd").Fatal(err)
	}
	_ = logger.Sync()
}
