package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"garagelog/cmd/exportcsv"
	"garagelog/cmd/importcsv"
	"garagelog/cmd/root"
	"garagelog/cmd/vehicles"
)

func init() {
	// Load environment variables before anything logs
	loadEnvSilently()

	// Configure the global log level so early logging honors it
	configureLogLevelDirectly()

	root.Init()

	root.Cmd.AddCommand(importcsv.Cmd)
	root.Cmd.AddCommand(exportcsv.Cmd)
	root.Cmd.AddCommand(vehicles.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances created before the configuration is resolved
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("GARAGELOG_LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
