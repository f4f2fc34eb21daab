package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"myshell/internal/config"
	"myshell/internal/shell"
)

const version = "1.1.0"

var (
	warningLogger *log.Logger
	errorLogger   *log.Logger
)

func init() {
	warningLogger = log.New(os.Stderr, "WARNING ", log.LstdFlags)
	errorLogger = log.New(os.Stderr, "ERROR ", log.LstdFlags)
}

func main() {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "myshell",
		Short: "An interactive shell of built-in file commands",
		Long: `myshell is a line-oriented command interpreter. It reads commands from
the terminal and executes them internally: cd, ls, pwd, cat, stat, mkdir,
rmdir, rm and exit. There are no pipes, redirection, job control, or
external programs.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configFile)
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file (default "+config.DefaultPath()+")")

	if err := rootCmd.Execute(); err != nil {
		errorLogger.Fatalf("%v", err)
	}
}

func run(configFile string) error {
	path := configFile
	if path == "" {
		// the default location is optional, an explicit --config is not
		if _, err := os.Stat(config.DefaultPath()); err == nil {
			path = config.DefaultPath()
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	s := shell.New(os.Stdin, os.Stdout, os.Stderr, cfg)
	if err := s.LoadHistory(); err != nil {
		warningLogger.Printf("Failed to load history: %v", err)
	}
	defer func() {
		if err := s.SaveHistory(); err != nil {
			warningLogger.Printf("Failed to save history: %v", err)
		}
	}()

	return s.Run()
}
