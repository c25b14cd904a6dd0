package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	figmaprojects "github.com/kataras/figma-projects"
	"github.com/kataras/figma-projects/pkg/figma"
	"github.com/kataras/figma-projects/pkg/formatter"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = figma.Version

const defaultProjectID = 5027923

var (
	apiRoot     string
	accessToken string
	projectID   uint64
	format      string
	outputFile  string
	timeout     time.Duration
	logFormat   string
	logLevel    string
)

func main() {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	defaultID, err := envUint64("FIGMA_PROJECT_ID", defaultProjectID)
	if err != nil {
		color.New(color.FgRed).Fprintf(color.Error, "Error: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "figma-projects",
		Short: "Dump the files of a Figma project",
		Long:  "A tool to fetch a Figma project's file list via the Figma API and print it as markdown, JSON, or YAML",
		Run:   run,
	}

	rootCmd.Flags().StringVar(&apiRoot, "api-root", envOr("FIGMA_API_ROOT", figma.DefaultAPIRoot), "Figma API root [env FIGMA_API_ROOT]")
	rootCmd.Flags().StringVarP(&accessToken, "access-token", "t", os.Getenv("FIGMA_ACCESS_TOKEN"), "Figma Personal Access Token [env FIGMA_ACCESS_TOKEN]")
	rootCmd.Flags().Uint64VarP(&projectID, "project-id", "p", defaultID, "Figma project to be displayed [env FIGMA_PROJECT_ID]")
	rootCmd.Flags().StringVarP(&format, "format", "f", string(formatter.Markdown), "Output format: markdown, json, yaml")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default stdout)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Abort the request after this long (0 = no limit)")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "console", "Progress log format: console, json")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level for --log-format=json: debug, info, warn, error")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-projects version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	logger, closeLogger, err := newLogger(logFormat, logLevel)
	if err != nil {
		red.Fprintf(color.Error, "Error: %v\n", err)
		os.Exit(1)
	}

	if logFormat == "console" {
		cyan.Fprintln(color.Error, "\n🎨 Figma Project Dump")
		cyan.Fprintln(color.Error, "======================")
		cyan.Fprintln(color.Error)
	}

	outFormat, err := formatter.ParseFormat(format)
	if err != nil {
		red.Fprintf(color.Error, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := figmaprojects.Run(ctx, figmaprojects.Options{
		APIRoot:     apiRoot,
		AccessToken: accessToken,
		ProjectID:   projectID,
		Format:      outFormat,
		Logger:      logger,
	})
	closeLogger()
	if err != nil {
		red.Fprintf(color.Error, "Error: %v\n", err)
		os.Exit(1)
	}

	if outputFile == "" {
		fmt.Fprint(os.Stdout, result.Output)
		return
	}

	green.Fprintf(color.Error, "\n💾 Writing to %s... ", outputFile)
	if err := os.WriteFile(outputFile, []byte(result.Output), 0644); err != nil {
		red.Fprintf(color.Error, "✗\n")
		red.Fprintf(color.Error, "Error: %v\n", err)
		os.Exit(1)
	}
	green.Fprintln(color.Error, "✓")

	green.Fprintf(color.Error, "\n✨ Successfully wrote %d file(s) of %q to %s\n\n", len(result.Project.Files), result.Project.Name, outputFile)
}
