// golf is mini golf for the terminal: 18-hole courses, swipe-to-putt
// physics and up to four players taking turns.
//
// Usage:
//
//	golf play [course]        - Pick a course from the menu, or play one directly
//	golf courses              - List available courses
//	golf validate <file.crs>  - Check a course file
//	golf scores [course]      - Show the best rounds on a course
//	golf serve                - Start SSH server for remote play
//	golf export <course>      - Write a course as a .crs file
//	golf elements             - List the element templates
//	golf config               - Print the default configuration
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--fps <rate>       - Set tick rate (default: from config, 20)
//	--db <path>        - Set database path (default: ~/.golf/rounds.db)
//	--courses <dir>    - Directory with NN.crs course files
//	--elements <path>  - Element template file
//	--images <dir>     - Template PNGs for painting holes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagDBPath   string
	flagCourses  string
	flagElements string
	flagImages   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "golf",
	Short: "Mini golf in your terminal",
	Long: `Mini golf for the terminal. Putt by swiping the mouse through the
ball: the faster the swipe, the harder the shot.

Available commands:
  play      - Play a course (menu when no course is given)
  courses   - Show all available courses
  validate  - Check a course file against the element templates
  scores    - View the best rounds on a course
  serve     - Start SSH server for remote play
  export    - Write a course as a .crs file
  elements  - List the element templates
  config    - Print the default configuration

Examples:
  golf play
  golf play sample --players 2
  golf courses --courses ./courses
  golf validate ./courses/01.crs
  golf scores "sample course"
  golf serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.golf/rounds.db", "Path to rounds database")
	rootCmd.PersistentFlags().StringVar(&flagCourses, "courses", "", "Directory with NN.crs course files")
	rootCmd.PersistentFlags().StringVar(&flagElements, "elements", "", "Element template file (default: built in)")
	rootCmd.PersistentFlags().StringVar(&flagImages, "images", "", "Directory with template PNGs (default: flat palette colors)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(elementsCmd)
	rootCmd.AddCommand(configCmd)
}
