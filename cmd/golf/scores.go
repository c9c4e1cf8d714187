package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
	"github.com/vovakirdan/tui-golf/internal/storage"
)

var (
	flagScoresMatch string
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [course]",
	Short: "Show the best rounds on a course",
	Long: `Display the 10 best rounds on the specified course, by id or name.
Without a course, shows a summary of every course played.

Examples:
  golf scores
  golf scores sample
  golf scores "sample course"
  golf scores --match 5f0c...         # Scorecard of one match
  golf scores sample --clear          # Delete the course history`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMatch, "match", "", "Show the scorecard of one match")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all rounds on the course")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresMatch != "" {
		if err := printMatch(os.Stdout, store, flagScoresMatch); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) == 0 {
		if err := printCourseSummary(os.Stdout, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	lib, err := loadLibrary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Rounds are stored by course name; unknown keys are taken as names of
	// courses that are no longer installed.
	name := args[0]
	if e, ok := lib.Find(name); ok {
		name = e.Course.Name
	}

	if flagScoresClear {
		if err := store.ClearRounds(name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all rounds on %s.\n", name)
		return
	}

	rounds, err := store.BestRounds(name, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}

	fmt.Printf("Best Rounds - %s\n", name)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'golf play %s' to set the first one!\n", args[0])
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-4s  %s\n", "Rank", "Player", "Total", "Par", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-4s  %s\n", "----", "------", "-----", "---", "----")

	for i, r := range rounds {
		fmt.Printf("  %-4d  %-10s  %-5d  %-4s  %s\n", i+1, r.Player, r.Total, toParText(r.ToPar()), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetCourseStats(name)
	if err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d in %d matches  Average: %.1f\n", stats.Rounds, stats.Matches, stats.AvgTotal)
	}
}

func toParText(d int) string {
	if d == 0 {
		return "E"
	}
	return fmt.Sprintf("%+d", d)
}

// printCourseSummary lists every played course, alphabetically.
func printCourseSummary(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllCourseStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		return nil
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "  %-20s  %-6s  %-7s  %-4s  %-7s  %s\n", "Course", "Rounds", "Matches", "Best", "Average", "Last played")
	fmt.Fprintf(w, "  %-20s  %-6s  %-7s  %-4s  %-7s  %s\n", "------", "------", "-------", "----", "-------", "-----------")
	for _, name := range names {
		s := all[name]
		fmt.Fprintf(w, "  %-20s  %-6d  %-7d  %-4d  %-7.1f  %s\n",
			name, s.Rounds, s.Matches, s.BestTotal, s.AvgTotal, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// printMatch prints the per-hole scorecard of every player of a match.
func printMatch(w io.Writer, store *storage.Store, matchID string) error {
	rounds, err := store.MatchRounds(matchID)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		return fmt.Errorf("no rounds for match %s", matchID)
	}

	fmt.Fprintf(w, "Match %s - %s\n\n", matchID, rounds[0].Course)
	fmt.Fprintf(w, "  %-10s", "Hole")
	for i := 1; i <= course.HoleCount; i++ {
		fmt.Fprintf(w, "%3d", i)
	}
	fmt.Fprintf(w, "  %5s  %s\n", "Total", "Par")
	for _, r := range rounds {
		fmt.Fprintf(w, "  %-10s", r.Player)
		for _, s := range r.Strokes {
			fmt.Fprintf(w, "%3d", s)
		}
		fmt.Fprintf(w, "  %5d  %s\n", r.Total, toParText(r.ToPar()))
	}
	return nil
}
