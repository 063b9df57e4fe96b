package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bugsnag/bugsnag-go"
	"github.com/eljojo/canaries"
	"github.com/enescakir/emoji"
	"github.com/sirupsen/logrus"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := canaries.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return canaries.ExitFailure
	}

	fs := flag.NewFlagSet("canaries", flag.ContinueOnError)
	fs.SetOutput(stderr)
	quiet := fs.Bool("q", false, "only log errors")
	showVersion := fs.Bool("version", false, "print version and exit")
	single := fs.Bool("single", cfg.Policy == string(canaries.PolicySingle), "require exactly one signed message per folder, named after the folder")
	jobs := fs.Int("jobs", cfg.Jobs, "number of folders to read at once")
	summary := fs.Bool("summary", false, "print a table of the collected messages to stdout")
	templatePath := fs.String("template", cfg.TemplatePath, "HTML template to render")
	outputPath := fs.String("o", cfg.OutputPath, "where to write the rendered page")
	initTemplate := fs.Bool("init-template", false, "write a starter template to -template and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, `canaries - render signed messages into a static HTML page

Usage:
  canaries [-q] <msgfolder>...
  canaries (-h|--help)
  canaries --version

Each <msgfolder> holds one or more <name>.sig files, each next to the
<name> message it signs. Messages are rendered newest first within a
folder, folders in the order given.

Options:
`)
		fs.PrintDefaults()
	}

	folders, err := parseInterspersed(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return canaries.ExitOK
		}
		return canaries.ExitFailure
	}

	if *showVersion {
		fmt.Fprintf(stdout, "canaries %s (commit %s, built %s)\n", version, commit, date)
		return canaries.ExitOK
	}

	log := canaries.NewLogger(stderr, *quiet)

	if *initTemplate {
		if err := canaries.WriteDefaultTemplate(*templatePath); err != nil {
			log.Errorf("%v Failed to write template: %v", emoji.CrossMark, err)
			return canaries.ExitFailure
		}
		log.Infof("%v Wrote starter template to %s", emoji.CheckMarkButton, *templatePath)
		return canaries.ExitOK
	}

	if len(folders) == 0 {
		fmt.Fprintf(stderr, "Error: at least one <msgfolder> is required\n\n")
		fs.Usage()
		return canaries.ExitFailure
	}

	if cfg.BugsnagAPIKey != "" {
		bugsnag.Configure(bugsnag.Configuration{
			APIKey:          cfg.BugsnagAPIKey,
			AppVersion:      version,
			ProjectPackages: []string{"main", "github.com/eljojo/canaries"},
			Synchronous:     true,
		})
	}

	policy := canaries.PolicyAll
	if *single {
		policy = canaries.PolicySingle
	}

	if err := generate(log, folders, policy, *jobs, *templatePath, *outputPath, *summary, stdout); err != nil {
		if !canaries.IsInputError(err) && cfg.BugsnagAPIKey != "" {
			_ = bugsnag.Notify(err)
		}
		log.Errorf("%v %v", emoji.CrossMark, err)
		return canaries.ExitCode(err)
	}
	return canaries.ExitOK
}

// parseInterspersed parses flags wherever they appear among the folders, so
// "canaries msg -q" works like "canaries -q msg". Everything after "--" is a
// folder.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var folders []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		consumed := args[:len(args)-len(rest)]
		if len(consumed) > 0 && consumed[len(consumed)-1] == "--" {
			return append(folders, rest...), nil
		}
		if len(rest) == 0 {
			return folders, nil
		}
		folders = append(folders, rest[0])
		args = rest[1:]
	}
}

func generate(log logrus.FieldLogger, folders []string, policy canaries.Policy, jobs int, templatePath, outputPath string, summary bool, stdout io.Writer) error {
	if err := canaries.ValidateFolders(folders); err != nil {
		return err
	}

	collector := &canaries.Collector{Log: log, Policy: policy, Jobs: jobs}
	msgs, err := collector.Collect(folders)
	if err != nil {
		return err
	}

	if summary {
		canaries.PrintSummary(stdout, msgs)
	}

	renderer, err := canaries.NewRenderer(templatePath)
	if err != nil {
		return err
	}
	if err := renderer.RenderFile(msgs, outputPath); err != nil {
		return err
	}

	log.Infof("%v Wrote %d signed message(s) to %s", emoji.CheckMarkButton, len(msgs), outputPath)
	return nil
}
