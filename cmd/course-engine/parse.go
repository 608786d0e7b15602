// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/course-engine/internal/syllabus"
)

var parseCmd = &cobra.Command{
	Use:   "parse <syllabus.md>",
	Short: "List the module headings found in a syllabus",
	Long: `Parse scans the syllabus for "### Module" headings and prints the
extracted module titles in file order, without running the pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modules, err := syllabus.Parse(args[0])
		if err != nil {
			return err
		}
		for i, m := range modules {
			fmt.Printf("%2d  %s\n", i+1, m)
		}
		fmt.Printf("\n%d module(s)\n", len(modules))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
