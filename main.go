// Command screenshot-gen draws mock App Tracker UI screenshots for the
// responsive-design review. It writes 30 PNGs: 5 pages across 3
// viewports in light and dark mode.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/frogg-app/app-tracker/internal/app"
)

var version = "dev"

func main() {
	var (
		outDir string
		debug  bool
	)

	rootCmd := &cobra.Command{
		Use:     "screenshot-gen",
		Short:   "Generate mock App Tracker UI screenshots",
		Long:    "Draws placeholder dashboard, ports, services, processes and containers screenshots across mobile, tablet and desktop viewports in light and dark mode.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger(debug)
			defer logger.Sync()
			return app.NewGenerator(outDir, logger).Run()
		},
	}

	rootCmd.Flags().StringVarP(&outDir, "out", "o", app.DefaultOutDir, "output directory root")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(debug bool) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, _ := config.Build()
	return logger
}
