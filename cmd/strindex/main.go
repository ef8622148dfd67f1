package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/strindex/internal/version"
)

var (
	configPath string
	portFlag   int

	rootCmd = &cobra.Command{
		Use:           "strindex",
		Short:         "Content-addressed string analysis store",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server (default)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	analyzeCmd = &cobra.Command{
		Use:   "analyze [value]",
		Short: "Print the analysis of a string as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}

	interpretCmd = &cobra.Command{
		Use:   "interpret [query]",
		Short: "Print the filters a natural language query translates to",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runInterpret,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
)

func init() {
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().StringVarP(&configPath, "config", "c", "", "path to config file (default: config/<ENV>.yaml)")
		c.Flags().IntVarP(&portFlag, "port", "p", 0, "override http.port")
	}
	rootCmd.AddCommand(serveCmd, analyzeCmd, interpretCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
