// Package cmd provides the root command and CLI setup for premm.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/LinnaX7/PReMM/internal/domain"
)

// workflow is built from the configuration on first use unless already set.
var workflow domain.Workflow

var (
	outputDirFlag   string
	benchmarkFlag   string
	maxTriesFlag    int
	maxFaultTopFlag int
	chainLengthFlag int
	perfectFlag     bool
	clusteringFlag  bool
	toleranceFlag   int
	policyFlag      string
	workersFlag     int
	keepWorkDirFlag bool
	verboseFlag     bool
	logFileFlag     string
)

const rootLongDescription = `PReMM repairs multi-fault bugs with a language-model repair agent.

Faulty methods are partitioned into clusters by the failing tests they
affect. Each cluster is repaired on its own; clusters sharing a failing
test are merged and validated together, rolled back when they fail, and
the accepted patches are finally checked against the whole test suite.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "premm",
		Short: "Multi-fault program repair engine",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func init() {
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		configureLogger(logFileFlag, verboseFlag)
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&outputDirFlag, outputFlagName, "o", defaultReportsDir, "output directory for results and patches")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputFlagName)

	flags.StringVarP(&benchmarkFlag, benchmarkFlagName, "b", "", "benchmark description file (YAML)")
	bindFlagToConfig(flags.Lookup(benchmarkFlagName), benchmarkConfigKey)

	flags.IntVar(&maxTriesFlag, maxTriesFlagName, defaultMaxTries, "attempts per fault-localization rank")
	bindFlagToConfig(flags.Lookup(maxTriesFlagName), maxTriesKey)

	flags.IntVar(&maxFaultTopFlag, maxFaultTopFlagName, defaultMaxFaultTop, "number of ranked fault-localization candidates to try")
	bindFlagToConfig(flags.Lookup(maxFaultTopFlagName), maxFaultTopKey)

	flags.IntVar(&chainLengthFlag, chainLengthFlagName, defaultChainLength, "internal step budget of one cluster repair")
	bindFlagToConfig(flags.Lookup(chainLengthFlagName), chainLengthKey)

	flags.BoolVar(&perfectFlag, perfectFlagName, defaultPerfect, "use perfect fault localization instead of ranked candidates")
	bindFlagToConfig(flags.Lookup(perfectFlagName), perfectKey)

	flags.BoolVar(&clusteringFlag, clusteringFlagName, defaultClustering, "partition faulty methods into clusters by failing tests")
	bindFlagToConfig(flags.Lookup(clusteringFlagName), clusteringKey)

	flags.IntVar(&toleranceFlag, toleranceFlagName, defaultTolerance, "full-suite failures treated as a broken build")
	bindFlagToConfig(flags.Lookup(toleranceFlagName), toleranceKey)

	flags.StringVar(&policyFlag, policyFlagName, defaultPolicy, "near-success policy: strict or related")
	bindFlagToConfig(flags.Lookup(policyFlagName), policyKey)

	flags.IntVar(&workersFlag, workersFlagName, defaultAnalysisWorkers, "concurrent key-token mining calls")
	bindFlagToConfig(flags.Lookup(workersFlagName), analysisWorkersKey)

	flags.BoolVar(&keepWorkDirFlag, keepWorkDirFlagName, defaultKeepWorkDir, "keep the bug's working copy after the run")
	bindFlagToConfig(flags.Lookup(keepWorkDirFlagName), keepWorkDirKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	flags.StringVar(&logFileFlag, logFlagName, "", "log file (default from log.filename)")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels the running command, which restores the working copy
// before returning.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
