package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"gopkg.in/yaml.v3"

	m "github.com/LinnaX7/PReMM/internal/model"
)

const analysisKeyPrefix = "analysis/"

// AnalysisCache stores analysis results between runs.
type AnalysisCache interface {
	Get(ctx context.Context, key string) (*m.AnalysisResult, bool, error)
	Put(ctx context.Context, key string, result *m.AnalysisResult) error
	Close() error
}

// BadgerAnalysisCache keeps YAML-encoded analysis results in an embedded badger database.
type BadgerAnalysisCache struct {
	db *badger.DB
}

// OpenAnalysisCache opens the cache at dir. An empty dir opens an in-memory cache.
func OpenAnalysisCache(dir string) (*BadgerAnalysisCache, error) {
	var opts badger.Options

	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
		}

		opts = badger.DefaultOptions(dir)
	}

	opts = opts.WithLogger(&badgerLogger{logger: slog.Default()})

	db, err := badger.Open(opts)
	if err != nil {
		slog.Error("Failed to open analysis cache", "dir", dir, "error", err)
		return nil, fmt.Errorf("failed to open analysis cache: %w", err)
	}

	return &BadgerAnalysisCache{db: db}, nil
}

// Get returns the cached result for key, reporting whether it was present.
// Every call decodes a fresh copy, so callers may mutate the result.
func (c *BadgerAnalysisCache) Get(ctx context.Context, key string) (*m.AnalysisResult, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var raw []byte

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(analysisKeyPrefix + key))
		if err != nil {
			return err
		}

		raw, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached analysis %s: %w", key, err)
	}

	var result m.AnalysisResult
	if err := yaml.Unmarshal(raw, &result); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached analysis %s: %w", key, err)
	}

	return &result, true, nil
}

// Put stores result under key.
func (c *BadgerAnalysisCache) Put(ctx context.Context, key string, result *m.AnalysisResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := marshalYAML(result)
	if err != nil {
		return fmt.Errorf("failed to encode analysis %s: %w", key, err)
	}

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(analysisKeyPrefix+key), raw)
	})
}

// Close releases the database.
func (c *BadgerAnalysisCache) Close() error {
	return c.db.Close()
}

// badgerLogger routes badger's internal logging to slog.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// CachedAnalyzer serves Analyze from a cache and delegates everything else.
type CachedAnalyzer struct {
	AnalysisProvider
	cache AnalysisCache
}

// NewCachedAnalyzer wraps inner with cache.
func NewCachedAnalyzer(inner AnalysisProvider, cache AnalysisCache) *CachedAnalyzer {
	return &CachedAnalyzer{AnalysisProvider: inner, cache: cache}
}

// Analyze returns the cached result for the request or runs and stores it.
func (c *CachedAnalyzer) Analyze(ctx context.Context, req AnalysisRequest) (*m.AnalysisResult, error) {
	key := req.CacheKey()

	cached, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("Analysis cache read failed", "key", key, "error", err)
	} else if ok {
		slog.Debug("Analysis cache hit", "key", key)
		return cached, nil
	}

	result, err := c.AnalysisProvider.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Put(ctx, key, result); err != nil {
		slog.Warn("Analysis cache write failed", "key", key, "error", err)
	}

	return result, nil
}
