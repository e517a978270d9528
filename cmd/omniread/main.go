package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/omniread/internal/cli"
	"codeberg.org/snonux/omniread/internal/models"
	"codeberg.org/snonux/omniread/internal/phonetic"
	"codeberg.org/snonux/omniread/internal/processor"
)

func main() {
	flags := cli.NewFlags()

	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(args, flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(args []string, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	// Handle --suggest flag
	if flags.Suggest != "" {
		suggester := phonetic.NewSuggester(cli.GetOpenAIKey())
		suggestion, err := suggester.Suggest(flags.Suggest)
		if err != nil {
			return fmt.Errorf("failed to suggest a respelling: %w", err)
		}
		fmt.Println(phonetic.DictionaryRow(flags.Suggest, suggestion))
		return nil
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	proc := processor.NewProcessor(flags)
	return proc.ProcessSubmission(arg)
}
