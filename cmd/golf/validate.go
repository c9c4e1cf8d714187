package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.crs>...",
	Short: "Check course files",
	Long: `Parses each course file against the element templates and reports the
first problem of every file together with its line number.

Examples:
  golf validate ./courses/01.crs
  golf validate --elements ./elements.txt ./courses/*.crs`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	cat, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, path := range args {
		line, ok := checkCourse(path, cat)
		fmt.Println(line)
		if !ok {
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// checkCourse loads one course file and describes the outcome. Malformed
// content and unreadable files are reported differently.
func checkCourse(path string, cat *course.Catalog) (string, bool) {
	c, err := course.LoadFile(path, cat)
	switch {
	case err == nil:
	case course.IsParseError(err):
		return fmt.Sprintf("FAIL  %s", err), false
	default:
		return fmt.Sprintf("ERROR %s", err), false
	}
	return fmt.Sprintf("ok    %s: %q, par %d", path, c.Name, c.Par()), true
}
