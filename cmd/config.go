package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/LinnaX7/PReMM/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "premm"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "PREMM"

	outputFlagName      = "output"
	benchmarkFlagName   = "benchmark"
	maxTriesFlagName    = "max-tries"
	maxFaultTopFlagName = "max-fault-top"
	chainLengthFlagName = "chain-length"
	perfectFlagName     = "perfect"
	clusteringFlagName  = "clustering"
	toleranceFlagName   = "tolerance"
	policyFlagName      = "policy"
	workersFlagName     = "workers"
	keepWorkDirFlagName = "keep-workdir"
	rateLimitFlagName   = "rate-limit"
	verboseFlagName     = "verbose"
	logFlagName         = "log"

	benchmarkConfigKey  = "benchmark.config"
	maxTriesKey         = "repair.max_tries"
	maxFaultTopKey      = "repair.max_fault_top"
	chainLengthKey      = "repair.chain_length"
	perfectKey          = "repair.perfect_localization"
	clusteringKey       = "repair.clustering"
	rateLimitKey        = "repair.rate_limit"
	keepWorkDirKey      = "repair.keep_workdir"
	toleranceKey        = "validation.tolerance"
	policyKey           = "validation.policy"
	analysisCommandKey  = "analysis.command"
	analysisTimeoutKey  = "analysis.timeout"
	analysisCacheDirKey = "analysis.cache_dir"
	analysisWorkersKey  = "analysis.workers"
	repairerCommandKey  = "repairer.command"
	repairerTimeoutKey  = "repairer.timeout"
	metricsFileKey      = "metrics.file"
	traceFileKey        = "trace.file"

	defaultReportsDir      = ".premm-results"
	defaultMaxTries        = 3
	defaultMaxFaultTop     = 5
	defaultChainLength     = 5
	defaultPerfect         = true
	defaultClustering      = true
	defaultRateLimit       = 0.0
	defaultKeepWorkDir     = false
	defaultTolerance       = domain.DefaultTolerance
	defaultPolicy          = string(domain.PolicyStrict)
	defaultAnalysisTimeout = 10 * time.Minute
	defaultAnalysisCache   = ".premm-cache"
	defaultAnalysisWorkers = 4
	defaultRepairerTimeout = 30 * time.Minute

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".premm.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(benchmarkConfigKey, "")

	viper.SetDefault(maxTriesKey, defaultMaxTries)
	viper.SetDefault(maxFaultTopKey, defaultMaxFaultTop)
	viper.SetDefault(chainLengthKey, defaultChainLength)
	viper.SetDefault(perfectKey, defaultPerfect)
	viper.SetDefault(clusteringKey, defaultClustering)
	viper.SetDefault(rateLimitKey, defaultRateLimit)
	viper.SetDefault(keepWorkDirKey, defaultKeepWorkDir)
	viper.SetDefault(toleranceKey, defaultTolerance)
	viper.SetDefault(policyKey, defaultPolicy)

	viper.SetDefault(analysisCommandKey, "")
	viper.SetDefault(analysisTimeoutKey, int64(defaultAnalysisTimeout.Seconds()))
	viper.SetDefault(analysisCacheDirKey, defaultAnalysisCache)
	viper.SetDefault(analysisWorkersKey, defaultAnalysisWorkers)
	viper.SetDefault(repairerCommandKey, "")
	viper.SetDefault(repairerTimeoutKey, int64(defaultRepairerTimeout.Seconds()))
	viper.SetDefault(metricsFileKey, "")
	viper.SetDefault(traceFileKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// settingsFromConfig assembles the engine settings from flags, env and config.
func settingsFromConfig() domain.Settings {
	return domain.Settings{
		MaxTries:            viper.GetInt(maxTriesKey),
		MaxFaultTop:         viper.GetInt(maxFaultTopKey),
		ChainLength:         viper.GetInt(chainLengthKey),
		PerfectLocalization: viper.GetBool(perfectKey),
		Clustering:          viper.GetBool(clusteringKey),
		Tolerance:           viper.GetInt(toleranceKey),
		Policy:              domain.Policy(viper.GetString(policyKey)),
		AnalysisWorkers:     viper.GetInt(analysisWorkersKey),
		KeepWorkDir:         viper.GetBool(keepWorkDirKey),
	}
}

// secondsKey reads a duration stored as whole seconds.
func secondsKey(key string) time.Duration {
	return time.Duration(viper.GetInt64(key)) * time.Second
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
