package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkReportDir string

var checkCmd = &cobra.Command{
	Use:   "check <suite.yaml>...",
	Short: "Run fixture suites and report which cases pass",
	Long: `Run one or more fixture suites.

A suite is a YAML file listing cases. Each case names a decode target,
a payload (inline or as a file relative to the suite), and what
decoding it must produce:

  name: updates
  cases:
    - name: private text
      target: update
      file: fixtures/private_text.json
      expect:
        variants: [tg.MessageUpdate]
        shapes: [UserTextMessage]
        exact: true
    - name: unknown update kind
      target: update
      payload: '{"update_id": 1, "story": {}}'
      expect:
        error: unresolvable_variant

The command fails when any case fails.`,
	Example: `  tgwire check testdata/suite.yaml
  tgwire check suites/*.yaml --report-dir reports`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			s, err := LoadSuite(path)
			if err != nil {
				return err
			}
			report := s.Run()
			report.Print(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout())

			logger.Debug("suite finished", "suite", report.Suite, "passed", report.Summary.Passed, "failed", report.Summary.Failed)
			if checkReportDir != "" {
				file, err := report.Save(checkReportDir)
				if err != nil {
					return err
				}
				logger.Info("report saved", "file", file)
			}
			failed += report.Summary.Failed
		}
		if failed > 0 {
			return fmt.Errorf("%d case(s) failed", failed)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkReportDir, "report-dir", "", "Write a JSON report per suite into this directory")
}
