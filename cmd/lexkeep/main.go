// Package main provides the lexkeep CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/lexkeep/lexkeep/cli"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	provider  string
	dbPath    string
	ephemeral bool
	timeout   uint64
	verbose   bool
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "lexkeep",
		Short: "Legal case management with an LLM assistant",
		Long: `Track legal cases, evidence, and case facts locally, and research
legislation and case law, through an LLM assistant with tool access.

Data lives in a local SQLite database; nothing leaves the machine except
the conversation sent to the configured LLM provider.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&provider, "provider", "p", "", "LLM provider (openai, anthropic, deepseek, gemini)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (default ~/.lexkeep/lexkeep.db)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep all data in memory, nothing persisted")
	rootCmd.PersistentFlags().Uint64Var(&timeout, "timeout", 0, "Tool timeout in seconds (default 30)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show tool calls and usage")

	// Add commands
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(callCmd())
	rootCmd.AddCommand(toolsCmd())
	rootCmd.AddCommand(researchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func options() cli.Options {
	return cli.Options{
		Provider:    provider,
		DBPath:      dbPath,
		Ephemeral:   ephemeral,
		TimeoutSecs: timeout,
		Verbose:     verbose,
	}
}

func chatCmd() *cobra.Command {
	var conversationID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation with the assistant",
		Long: `Start an interactive conversation. The assistant can create and
update cases, store and recall case facts, list evidence, and search
legislation and case law on your behalf.

History is persisted per conversation id and resumed on the next run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Chat(context.Background(), conversationID, options())
		},
	}

	cmd.Flags().StringVar(&conversationID, "conversation", "", "Conversation id for history persistence")

	return cmd
}

func callCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call [tool] [args-json]",
		Short: "Dispatch a single tool directly",
		Long: `Dispatch one tool call without a model in the loop, for scripting
and inspection. Arguments are a JSON object; markdown fences and
surrounding text are tolerated.

Example:
  lexkeep call list_cases '{"filterStatus":"active"}'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawArgs := ""
			if len(args) > 1 {
				rawArgs = args[1]
			}
			return cli.Call(context.Background(), args[0], rawArgs, options())
		},
	}

	return cmd
}

func toolsCmd() *cobra.Command {
	var verboseTools bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List available tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.ListTools(verboseTools)
		},
	}

	cmd.Flags().BoolVarP(&verboseTools, "verbose", "V", false, "Show tool parameters")

	return cmd
}

func researchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "research [query]",
		Short: "Search legislation and case law for a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Research(context.Background(), args[0])
		},
	}

	return cmd
}
