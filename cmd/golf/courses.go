package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List all available courses",
	Long:  `Shows the built-in sample course and every NN.crs file in --courses.`,
	Run:   runCourses,
}

func runCourses(cmd *cobra.Command, args []string) {
	lib, err := loadLibrary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Available courses:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, e := range lib.Entries {
		maxIDLen = max(maxIDLen, len(e.ID))
	}

	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "ID", "Par", "Name")
	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "--", "---", "----")

	for _, e := range lib.Entries {
		fmt.Printf("  %-*s  %-4d  %s\n", maxIDLen, e.ID, e.Course.Par(), e.Course.Name)
	}

	fmt.Println()
	fmt.Println("Run 'golf play <id>' to play a course.")
}
