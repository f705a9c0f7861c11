package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/finsight-dev/finsight/internal/commands"
)

func main() {
	// A .env next to the binary may carry FINSIGHT_TOKEN / FINSIGHT_API_URL;
	// its absence is fine.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.WarnLevel
	}
	log.SetLevel(logLevel)

	rootCmd := commands.NewRootCommand(log)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
