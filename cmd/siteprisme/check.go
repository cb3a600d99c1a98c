package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"siteprisme.fr/internal/content"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration and the portfolio catalogue",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	list, err := content.LoadPortfolio(cfg.Content.PortfolioPath)
	if err != nil {
		return err
	}

	defects := content.Validate(list)
	for _, d := range defects {
		fmt.Fprintf(out, "  %s\n", d)
	}
	if len(defects) > 0 {
		return fmt.Errorf("%d catalogue defect(s)", len(defects))
	}

	fmt.Fprintf(out, "configuration ok, %d projects in %s catalogue\n", len(list.Projects), sourceName(cfg.Content.PortfolioPath))
	return nil
}
