package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title Help Hualien API
// @version 1.0
// @description API координации помощи пострадавшим: заявки, волонтеры в пути и профили.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "help-hualien",
		Short: "Help Hualien disaster relief API",
		Long: `Help Hualien - HTTP API для координации помощи:
заявки о помощи, волонтеры в пути и профили пользователей.

Без подкоманды запускает HTTP-сервер.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
