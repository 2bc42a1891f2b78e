package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"vsmsummary-generator/internal/config"
	"vsmsummary-generator/internal/derive"
	"vsmsummary-generator/internal/diagnostic"
	"vsmsummary-generator/internal/logger"
	"vsmsummary-generator/internal/schema"
	"vsmsummary-generator/internal/vsmconfig"
)

var errUsage = errors.New("usage")

// options are the settings shared by all commands after flags override the
// loaded configuration.
type options struct {
	cfg     *config.Config
	log     *logger.Logger
	schemas []string
}

// parseOptions loads configuration, applies flags and sets up logging.
func parseOptions(name string, args []string, stderr io.Writer) (*options, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&cfg.Output.Dir, "out", cfg.Output.Dir, "output directory")
	flags.StringVar(&cfg.Output.Format, "format", cfg.Output.Format, "output format: cfg|yaml")
	flags.StringVar(&cfg.Output.Class, "output-class", cfg.Output.Class, "outputclass value of the config")
	flags.BoolVar(&cfg.Output.Stdout, "stdout", cfg.Output.Stdout, "print configs instead of writing files")
	noValidate := flags.Bool("no-validate", !cfg.Derive.Validate, "skip schema validation")
	flags.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: trace|debug|info|warn|error")

	if err := flags.Parse(args); err != nil {
		return nil, errUsage
	}

	cfg.Derive.Validate = !*noValidate

	if err := cfg.Check(); err != nil {
		return nil, err
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return nil, errUsage
	}

	log := logger.NewWithOutput(stderr)
	log.SetLevel(cfg.Log.Level)
	log.SetFormat(cfg.Log.Format)

	return &options{cfg: cfg, log: log, schemas: flags.Args()}, nil
}

// exitCode reports a parse or setup error and maps it to an exit code.
func exitCode(err error, stderr io.Writer) int {
	if errors.Is(err, errUsage) {
		return 2
	}

	fmt.Fprintln(stderr, "error:", err)

	return 1
}

// load loads the schemas and, unless disabled, validates them. It returns
// false when loading fails or validation found errors.
func (o *options) load() ([]*schema.Schema, bool) {
	schemas, err := loadSchemas(o.schemas)
	if err != nil {
		o.log.Error(err)
		return nil, false
	}

	if !o.cfg.Derive.Validate {
		return schemas, true
	}

	var diags diagnostic.Diagnostics
	for _, s := range schemas {
		diags.Merge(*schema.Validate(s))
	}

	o.report(diags)

	return schemas, !diags.HasErrors()
}

// report logs diagnostics: errors and warnings as such, infos at debug.
func (o *options) report(diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		entry := o.log.WithFields(logrus.Fields{"schema": d.Schema, "field": d.Field, "code": d.Code})

		switch d.Severity {
		case diagnostic.SeverityError:
			entry.Error(d.String())
		case diagnostic.SeverityWarning:
			entry.Warn(d.String())
		default:
			entry.Debug(d.Message)
		}
	}
}

func deriveCmd(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions("derive", args, stderr)
	if err != nil {
		return exitCode(err, stderr)
	}

	schemas, ok := opts.load()
	if !ok {
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var cfgOpts []vsmconfig.Option
	if opts.cfg.Output.Class != "" {
		cfgOpts = append(cfgOpts, vsmconfig.WithOutputClass(opts.cfg.Output.Class))
	}

	results, err := derive.DeriveAll(ctx, schemas, cfgOpts...)
	if err != nil {
		opts.log.Error(err)
		return 1
	}

	files := make([]vsmconfig.RenderedFile, 0, len(results))

	for _, r := range results {
		opts.report(r.Summary.Diagnostics())
		opts.log.Dump("field map of "+r.Summary.SchemaName(), r.Summary.FieldMap().Entries())

		file, err := vsmconfig.NewRenderedFile(r.Summary.SchemaName(), r.Config, opts.cfg.OutputFormat())
		if err != nil {
			opts.log.Error(err)
			return 1
		}

		opts.log.WithFields(logrus.Fields{
			"schema":  r.Summary.SchemaName(),
			"entries": r.Summary.FieldMap().Len(),
		}).Info("derived ", vsmconfig.DefName)

		files = append(files, file)
	}

	if opts.cfg.Output.Stdout {
		for _, f := range files {
			fmt.Fprintf(stdout, "# %s\n%s", f.Filename, f.Content)
		}

		return 0
	}

	if err := vsmconfig.WriteFiles(files, opts.cfg.Output.Dir); err != nil {
		opts.log.Error(err)
		return 1
	}

	opts.log.WithField("dir", opts.cfg.Output.Dir).Infof("wrote %d file(s)", len(files))

	return 0
}

func explainCmd(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions("explain", args, stderr)
	if err != nil {
		return exitCode(err, stderr)
	}

	schemas, ok := opts.load()
	if !ok {
		return 1
	}

	for _, s := range schemas {
		v := derive.NewVsmSummary(s)

		fmt.Fprintf(stdout, "%s:\n", s.Name)

		decisions := v.Decisions()
		if len(decisions) == 0 {
			fmt.Fprintf(stdout, "  (no %s summary class)\n", schema.DefaultSummaryClass)
			continue
		}

		for _, d := range decisions {
			fmt.Fprintf(stdout, "  %-20s %s\n", d.Summary, d.Explain())

			if d.Suggestion != "" {
				fmt.Fprintf(stdout, "  %-20s did you mean %q?\n", "", d.Suggestion)
			}
		}
	}

	return 0
}

func checkCmd(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions("check", args, stderr)
	if err != nil {
		return exitCode(err, stderr)
	}

	// check always validates.
	opts.cfg.Derive.Validate = true

	schemas, ok := opts.load()
	if !ok {
		return 1
	}

	for _, s := range schemas {
		fmt.Fprintf(stdout, "%s: ok\n", s.Name)
	}

	return 0
}
