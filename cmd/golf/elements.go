package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List the element templates",
	Long: `Shows every element template with the ids of its normal, slow-down and
speed-up modes. Course files place elements by these ids.

Examples:
  golf elements
  golf elements --elements ./elements.txt`,
	Run: runElements,
}

func runElements(cmd *cobra.Command, args []string) {
	cat, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printElements(os.Stdout, cat)
}

// printElements lists one line per template name, in id order of the
// first mode.
func printElements(w io.Writer, cat *course.Catalog) {
	fmt.Fprintf(w, "%d templates:\n\n", cat.Len())
	fmt.Fprintf(w, "  %-16s  %-7s  %-6s  %-6s  %-6s\n", "Name", "Size", "Normal", "Down", "Up")
	fmt.Fprintf(w, "  %-16s  %-7s  %-6s  %-6s  %-6s\n", "----", "----", "------", "----", "--")

	seen := make(map[string]bool)
	for _, t := range cat.Templates() {
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true

		modes := cat.Modes(t.Name)
		ids := [3]string{"-", "-", "-"}
		for i, m := range modes {
			if m != nil {
				ids[i] = fmt.Sprint(m.ID)
			}
		}
		size := fmt.Sprintf("%dx%d", t.Width, t.Height)
		fmt.Fprintf(w, "  %-16s  %-7s  %-6s  %-6s  %-6s\n", t.Name, size, ids[course.SurfaceNormal], ids[course.SurfaceDown], ids[course.SurfaceUp])
	}
}
