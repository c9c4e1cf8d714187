package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export <course>",
	Short: "Write a course in the course file format",
	Long: `Writes a course from the library, by id or name, as a .crs file. This is
the easiest way to start a new course from the built-in sample.

Examples:
  golf export sample > courses/01.crs
  golf export 03 -o ./backup/03.crs`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) {
	lib, err := loadLibrary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	entry, ok := lib.Find(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown course %q\n", args[0])
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := course.Write(w, entry.Course); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
