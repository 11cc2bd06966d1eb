package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"surveyor/internal/commands"
	"surveyor/internal/domain"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Show or answer survey results",
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var resultShowCmd = &cobra.Command{
	Use:   "show <surveyID>",
	Short: "Show the current result of a survey",
	Args:  cobra.ExactArgs(1),
	RunE:  runResultShow,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var resultAnswerCmd = &cobra.Command{
	Use:   "answer <surveyID> <answer>",
	Short: "Answer a survey and show the updated result",
	Args:  cobra.ExactArgs(2),
	RunE:  runResultAnswer,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(resultCmd)
	resultCmd.AddCommand(resultShowCmd, resultAnswerCmd)

	resultCmd.PersistentFlags().Bool("json", false, "Print the result as JSON")
}

func runResultShow(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	showCommand := commands.NewShowResultCommand(
		app.UseCaseFactory.MakeLoadSurveyResult(args[0]),
		app.AccountStore,
		app.Logger,
	)
	result, err := showCommand.Execute(commandContext(cmd))
	if err != nil {
		return withHint(err)
	}

	return printResult(cmd, result)
}

func runResultAnswer(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	surveyID := args[0]
	answerCommand := commands.NewAnswerCommand(
		app.UseCaseFactory.MakeSaveSurveyResult(surveyID),
		app.UseCaseFactory.MakeLoadSurveyResult(surveyID),
		app.AccountStore,
		app.Logger,
	)
	result, err := answerCommand.Execute(commandContext(cmd), commands.AnswerRequest{Answer: args[1]})
	if err != nil {
		return withHint(err)
	}

	return printResult(cmd, result)
}

func printResult(cmd *cobra.Command, result domain.SurveyResultModel) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}
	return writeResultTable(cmd.OutOrStdout(), result)
}

func writeResultTable(out io.Writer, result domain.SurveyResultModel) error {
	fmt.Fprintf(out, "%s\n", result.Question)
	fmt.Fprintf(out, "Date: %s\n\n", result.Date.Format(time.DateOnly))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ANSWER\tVOTES\tPERCENT\t")
	for _, answer := range result.Answers {
		marker := ""
		if answer.IsCurrentAccountAnswer {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%d\t%.0f%%\t%s\n", answer.Answer, answer.Count, answer.Percent, marker)
	}
	return w.Flush()
}
