package main

import (
	"os"

	"github.com/spf13/cobra"

	"transtats/internal/interfaces/cli/migrate"
	"transtats/internal/interfaces/cli/recalc"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "transtats",
		Short: "Transtats - translation statistics engine",
		Long:  `Transtats maintains denormalized per-(resource, language) translation statistics for a localization platform, with migration tools and a full recalculation job.`,
	}

	rootCmd.AddCommand(
		migrate.NewCommand(),
		recalc.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
