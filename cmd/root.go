package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "hb",
		Short:         "Honey Bible CLI (hb): track reading progress from KakaoTalk exports",
		Long:          "hb reads KakaoTalk chat exports of a Bible reading room, works out which days each participant confirmed with their completion mark, and renders the progress grid.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pass counters and debug details to stderr")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if verbose {
			app.log.SetLevel("debug")
		}
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		app.log.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAnalyzeCmd(app),
		newDatesCmd(app),
		newMarkCmd(),
		newCalendarCmd(app),
		newConfigCmd(app),
		newRunsCmd(app),
	)

	return rootCmd
}
