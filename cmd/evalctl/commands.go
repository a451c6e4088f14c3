package main

import (
	"encoding/json"
	"fmt"
	"io"

	"ai-assess/internal/app"
	"ai-assess/internal/config"
	"ai-assess/internal/dto"
	"ai-assess/internal/logger"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configDir string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "evalctl",
		Short:        "Grade answers and score registrations from the command line",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "directory containing config.yaml")

	root.AddCommand(newEvaluateCmd(opts), newScoreCmd(opts))
	return root
}

// loadComponents loads config the same way the API does and wires the services.
func loadComponents(cmd *cobra.Command, opts *rootOptions) (*app.Components, error) {
	var paths []string
	if opts.configDir != "" {
		paths = append(paths, opts.configDir)
	}
	cfg, err := config.LoadConfig(paths...)
	if err != nil {
		return nil, err
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, err
	}
	return app.Build(cmd.Context(), cfg)
}

const evaluateExample = `  evalctl evaluate --kind mcq --question "Capital of France?" --answer B --reference "b) Paris"
  evalctl evaluate --kind tf --question "Go has generics" --answer haan --reference true`

func newEvaluateCmd(opts *rootOptions) *cobra.Command {
	var req dto.EvaluateRequest
	cmd := &cobra.Command{
		Use:     "evaluate",
		Short:   "Grade one answer and print the verdict as JSON",
		Example: evaluateExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Question == "" || req.ReferenceAnswer == "" {
				return fmt.Errorf("--question and --reference are required")
			}
			c, err := loadComponents(cmd, opts)
			if err != nil {
				return err
			}
			defer c.Close()
			defer logger.Sync()

			domainReq := req.ToDomain()
			verdict := c.Evaluator.Evaluate(cmd.Context(), domainReq)
			return printJSON(cmd.OutOrStdout(), dto.NewEvaluateResponse(domainReq.Kind, verdict))
		},
	}
	cmd.Flags().StringVar(&req.QuestionType, "kind", "", "question type label, e.g. MCQ, TF, SA, CODE")
	cmd.Flags().StringVar(&req.Question, "question", "", "question text")
	cmd.Flags().StringVar(&req.UserAnswer, "answer", "", "candidate answer, empty means unattempted")
	cmd.Flags().StringVar(&req.ReferenceAnswer, "reference", "", "reference answer")
	cmd.Flags().StringArrayVar(&req.Options, "option", nil, "MCQ option text in label order, repeatable")
	return cmd
}

func newScoreCmd(opts *rootOptions) *cobra.Command {
	var registrationID int64
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a stored registration and print the report as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if registrationID <= 0 {
				return fmt.Errorf("--registration must be a positive id")
			}
			c, err := loadComponents(cmd, opts)
			if err != nil {
				return err
			}
			defer c.Close()
			defer logger.Sync()

			report, err := c.Reports.ScoreRegistration(cmd.Context(), registrationID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.NewReportResponse(report))
		},
	}
	cmd.Flags().Int64Var(&registrationID, "registration", 0, "registration id")
	return cmd
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
