package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitrevert/internal"
	"github.com/rios0rios0/gitrevert/internal/domain/entities"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "gitrevert",
		Short: "Undo the last commit's effect on individual files",
		Long: `Roll individual files back to their state before the last commit.

  gitrevert revert <file>...   Restore files from the parent of HEAD
  gitrevert stash <file>...    Amend files out of HEAD and stash their content
  gitrevert doctor             Check the git installation

Configuration is read from the file named by GITREVERT_CONFIG, or from
.gitrevert.yaml / .gitrevert.hcl in the usual locations.`,
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if fc, ok := ctrl.(entities.FlagController); ok {
			fc.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

// configureLogger applies the configured level; DEBUG=true always wins.
func configureLogger(settings *entities.Settings) {
	if level, err := logger.ParseLevel(settings.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext, err := injectAppContext()
	if err != nil {
		logger.Fatalf("Error initializing 'gitrevert': %s", err)
	}
	configureLogger(appContext.GetSettings())

	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, appContext)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = cobraRoot.ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Fatalf("Error executing 'gitrevert': %s", err)
	}

	os.Exit(appContext.GetExitStatus().Code())
}
