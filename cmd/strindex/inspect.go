package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	domentry "github.com/kailas-cloud/strindex/internal/domain/entry"
	"github.com/kailas-cloud/strindex/internal/domain/nlquery"
	chiTransport "github.com/kailas-cloud/strindex/internal/transport/chi"
)

// runAnalyze prints the same document POST /strings would return, without storing anything.
func runAnalyze(cmd *cobra.Command, args []string) error {
	e, err := domentry.New(args[0], time.Now().UTC(), domentry.MaxValueSize)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	return printJSON(cmd, chiTransport.EntryToResponse(&e))
}

func runInterpret(cmd *cobra.Command, args []string) error {
	in, err := nlquery.Interpret(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("interpret: %w", err)
	}
	return printJSON(cmd, chiTransport.InterpretationToResponse(in))
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
