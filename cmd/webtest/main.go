// Package main is a smoke-check entry point: it brings up one browser
// session from the selected environment configuration, waits for the start
// page to load, prints its title and shuts down. Useful for validating an
// environment file or a grid endpoint before pointing a test suite at it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"webtest-go/application/wait"
	"webtest-go/config"
	"webtest-go/infrastructure/browser"
	"webtest-go/infrastructure/logging"
)

func main() {
	env := flag.String("env", "", "environment to load (qa, dev, stage, uat, prod); overrides "+config.EnvVar)
	configDir := flag.String("config-dir", config.DefaultDir, "directory containing environment files")
	urlOverride := flag.String("url", "", "navigate here instead of the configured start URL")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline for the smoke check")
	flag.Parse()

	logger, closeLog, err := logging.Setup(nil)
	if err != nil {
		os.Stderr.WriteString("Failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer closeLog()

	if *env != "" {
		os.Setenv(config.EnvVar, *env)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cfg, err := config.NewLoader(*configDir, logger).Load()
	if err != nil {
		logger.Error("configuration load failed", "error", err)
		os.Exit(1)
	}

	manager := browser.NewManager(browser.NewFactory(cfg, logger), logger)
	defer manager.QuitAll()

	session, err := manager.Create("main")
	if err != nil {
		logger.Error("session creation failed", "error", err)
		os.Exit(1)
	}

	if *urlOverride != "" {
		if err := session.Navigate(*urlOverride); err != nil {
			logger.Error("navigation failed", "error", err)
			os.Exit(1)
		}
	}

	waiter := wait.New(session.Driver(), logger).
		WithTimeout(cfg.Duration(config.KeyDefaultTimeout, wait.DefaultTimeout))
	if err := waiter.ForPageLoaded(ctx); err != nil {
		logger.Error("page never finished loading", "error", err)
		os.Exit(1)
	}

	title, err := session.Title()
	if err != nil {
		logger.Error("reading title failed", "error", err)
		os.Exit(1)
	}

	url, _ := session.CurrentURL()
	fmt.Printf("%s  (%s)\n", title, url)
}
