package main

import (
	"fmt"
	"runtime"

	"github.com/carlmjohnson/versioninfo"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func printVersion() {
	fmt.Printf("treectl %s\n", versioninfo.Short())
	fmt.Printf("  commit: %s\n", versioninfo.Revision)
	if !versioninfo.LastCommit.IsZero() {
		fmt.Printf("  built: %s\n", versioninfo.LastCommit.Format("2006-01-02T15:04:05Z07:00"))
	}
	if versioninfo.DirtyBuild {
		fmt.Printf("  dirty: true\n")
	}
	fmt.Printf("  go: %s\n", runtime.Version())
}
