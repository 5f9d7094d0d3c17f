package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"plugvault/internal/catalog"
	"plugvault/internal/config"
	"plugvault/internal/logging"
	"plugvault/internal/plugin"
	"plugvault/internal/scanner"
)

// commandContext lazily builds the pieces most commands share: the loaded
// configuration, the logger, and a scanned catalog. A single invocation scans
// at most once, no matter how the command slices the result afterwards.
type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	rootsFlag    *[]string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	catalogOnce sync.Once
	catalog     *plugin.Catalog
	catalogErr  error
}

func newCommandContext(configFlag, logLevelFlag *string, rootsFlag *[]string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		rootsFlag:    rootsFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.TrimSpace(*c.logLevelFlag)
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// scanRoots returns the directories to scan: the --root overrides when given,
// the standard system and user plugin directories otherwise.
func (c *commandContext) scanRoots() []string {
	if c.rootsFlag != nil && len(*c.rootsFlag) > 0 {
		return *c.rootsFlag
	}
	return scanner.DefaultRoots()
}

func (c *commandContext) newService() (*scanner.Service, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return scanner.NewService(scanner.New(c.scanRoots(), logger), cfg.LockPath(), logger), nil
}

// ensureCatalog runs a scan the first time it is called and returns the same
// catalog on every subsequent call within this invocation.
func (c *commandContext) ensureCatalog(ctx context.Context) (*plugin.Catalog, error) {
	c.catalogOnce.Do(func() {
		service, err := c.newService()
		if err != nil {
			c.catalogErr = err
			return
		}
		cat, err := service.Scan(ctx)
		if err != nil {
			c.catalogErr = err
			return
		}
		c.catalog = cat
	})
	return c.catalog, c.catalogErr
}

func (c *commandContext) openHistory() (*catalog.History, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return catalog.OpenHistory(cfg.HistoryDBPath())
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
