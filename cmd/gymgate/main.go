package main

import (
	"os"

	"github.com/spf13/cobra"

	"gymgate/internal/interfaces/cli/migrate"
	"gymgate/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gymgate",
		Short: "GymGate - gym membership and turnstile access service",
		Long:  `GymGate manages gym clients, subscription plans and visit tracking, and answers turnstile access requests from face recognition devices.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
