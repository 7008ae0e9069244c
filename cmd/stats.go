package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/adasgupta/simtutor/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session history and LLM token usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		if err := printSessions(ctx, repo, limit); err != nil {
			return err
		}
		fmt.Println()
		return printUsage(ctx, repo)
	},
}

func printSessions(ctx context.Context, repo store.EventRepo, limit int) error {
	sessions, err := repo.SessionSummaries(ctx, limit)
	if err != nil {
		return fmt.Errorf("query sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Println("Recent Sessions")
	fmt.Println(strings.Repeat("─", 78))
	fmt.Printf("%-10s  %-19s  %-18s  %-10s  %-9s  %s\n",
		"Session", "Started", "Simulation", "Concepts", "Exchanges", "Done")
	fmt.Println(strings.Repeat("─", 78))

	for _, ss := range sessions {
		done := ""
		if ss.Ended {
			done = "✓"
		}
		fmt.Printf("%-10s  %-19s  %-18s  %4d/%-5d  %9d  %s\n",
			shortID(ss.SessionID),
			ss.StartedAt.Local().Format("2006-01-02 15:04:05"),
			ss.SimulationID,
			ss.ConceptsCompleted,
			ss.ConceptsTotal,
			ss.ExchangesTotal,
			done,
		)
	}
	return nil
}

func printUsage(ctx context.Context, repo store.EventRepo) error {
	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		return fmt.Errorf("query usage: %w", err)
	}

	if len(usage) == 0 {
		fmt.Println("No LLM usage recorded yet.")
		return nil
	}

	fmt.Println("LLM Usage by Purpose")
	fmt.Println(strings.Repeat("─", 64))
	fmt.Printf("%-12s  %8s  %10s  %10s  %10s  %5s\n",
		"Purpose", "Requests", "Input", "Output", "Total", "Fail")
	fmt.Println(strings.Repeat("─", 64))

	var totalReq, totalIn, totalOut, totalFail int
	for _, u := range usage {
		fmt.Printf("%-12s  %8d  %10d  %10d  %10d  %5d\n",
			u.Purpose, u.Requests, u.InputTokens, u.OutputTokens,
			u.InputTokens+u.OutputTokens, u.Failures)
		totalReq += u.Requests
		totalIn += u.InputTokens
		totalOut += u.OutputTokens
		totalFail += u.Failures
	}

	fmt.Println(strings.Repeat("─", 64))
	fmt.Printf("%-12s  %8d  %10d  %10d  %10d  %5d\n",
		"TOTAL", totalReq, totalIn, totalOut, totalIn+totalOut, totalFail)
	return nil
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
