package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathfinder/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate or export question catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a catalog file against the schema and the structural rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.LoadFile(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: ok (version %s, %d questions)\n", args[0], c.Version(), c.Len())
		for _, s := range catalog.AllSections() {
			fmt.Fprintf(out, "  %-24s %d\n", s.DisplayName(), len(c.BySection(s)))
		}
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active catalog as YAML, a starting point for custom catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("out")

		_, c, log, err := commandEnv(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		data, err := catalog.Marshal(c)
		if err != nil {
			return fmt.Errorf("encode catalog: %w", err)
		}
		if outPath == "" || outPath == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("write catalog: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Wrote", outPath)
		return nil
	},
}

func init() {
	catalogExportCmd.Flags().String("out", "", "Write to this file instead of stdout")

	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}
