// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/complog/src/config"
	"github.com/H0llyW00dzZ/complog/src/logger"
	"github.com/H0llyW00dzZ/complog/src/observers"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// ErrNoMessages is returned by emit when neither arguments nor standard input
// provide a message.
var ErrNoMessages = errors.New("no messages to log")

// ErrEscalateSeverity is returned when --escalate is used with a severity
// other than error, or together with --pretty.
var ErrEscalateSeverity = errors.New("--escalate requires --severity error and no --pretty")

// emitOptions holds the flags of the emit command.
type emitOptions struct {
	id         string
	severity   string
	max        string
	configFile string
	pretty     bool
	indent     bool
	noConsole  bool
	summary    bool
	metrics    bool
	escalate   bool
	verbose    bool
}

// Execute runs the root command with the given context.
// Console output of every logger goes through hub.
func Execute(ctx context.Context, version string, hub *logger.Hub) error {
	return NewRootCmd(version, hub).ExecuteContext(ctx)
}

// NewRootCmd builds the complog command tree bound to hub.
func NewRootCmd(version string, hub *logger.Hub) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "complog",
		Short:         "Per-component logger",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newEmitCmd(hub), newLevelsCmd(hub))
	return rootCmd
}

func newEmitCmd(hub *logger.Hub) *cobra.Command {
	opts := &emitOptions{}

	cmd := &cobra.Command{
		Use:   "emit [MESSAGE...]",
		Short: "Log messages through a named logger",
		Long: `Log every MESSAGE, or every line of standard input when no MESSAGE is given,
through the logger named by --id at the severity given by --severity.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, args, hub, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.id, "id", "n", "app", "logger id used in prefixes")
	flags.StringVarP(&opts.severity, "severity", "s", "info", "severity of the messages (error, warning, info, debug)")
	flags.StringVarP(&opts.max, "max", "m", "", "most verbose severity the logger accepts (default: config or build default)")
	flags.StringVarP(&opts.configFile, "config", "c", "", "JSON or YAML config file (default: $"+config.EnvConfigFile+")")
	flags.BoolVarP(&opts.pretty, "pretty", "p", false, "log all messages as one aligned multi-line block")
	flags.BoolVarP(&opts.indent, "indent", "i", false, "log messages as continuation lines")
	flags.BoolVar(&opts.noConsole, "no-console", false, "do not write to the console")
	flags.BoolVar(&opts.summary, "summary", false, "print a per-logger message table to stderr")
	flags.BoolVar(&opts.metrics, "metrics", false, "print Prometheus counters to stderr")
	flags.BoolVar(&opts.escalate, "escalate", false, "escalate the last message and exit non-zero")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log complog's own debug messages")

	return cmd
}

func runEmit(cmd *cobra.Command, args []string, hub *logger.Hub, opts *emitOptions) error {
	ctx := cmd.Context()

	diag := hub.New("complog", logger.WithMaxSeverity(logger.Info))
	if opts.verbose {
		_ = diag.SetMaxSeverity(logger.Debug)
	}

	severity, err := logger.ParseSeverity(opts.severity)
	if err != nil {
		return fmt.Errorf("--severity: %w", err)
	}
	if opts.escalate && (severity != logger.Error || opts.pretty) {
		return ErrEscalateSeverity
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}
	cfg.Apply(hub)
	_ = diag.Debug(fmt.Sprintf("config loaded with %d logger entries", len(cfg.Loggers)))

	var extra []logger.Option
	if opts.max != "" {
		limit, err := logger.ParseSeverity(opts.max)
		if err != nil {
			return fmt.Errorf("--max: %w", err)
		}
		extra = append(extra, logger.WithMaxSeverity(limit))
	}
	if opts.noConsole {
		extra = append(extra, logger.WithConsole(false))
	}
	log := cfg.NewLogger(hub, opts.id, extra...)
	_ = diag.Debug(fmt.Sprintf("logger %q accepts up to %s", log.ID(), log.MaxSeverity()))

	messages := args
	if len(messages) == 0 {
		if messages, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	if len(messages) == 0 {
		return ErrNoMessages
	}

	tally := observers.NewTally()
	log.Subscribe(tally)

	var (
		metrics  *observers.Metrics
		registry *prometheus.Registry
	)
	if opts.metrics {
		metrics = observers.NewMetrics("complog")
		registry = prometheus.NewRegistry()
		if err := registry.Register(metrics); err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		log.Subscribe(metrics)
	}

	if err := emit(ctx, log, severity, messages, opts); err != nil {
		return err
	}
	_ = diag.Debug(fmt.Sprintf("emitted %d messages", len(messages)))

	if opts.summary {
		fmt.Fprintln(cmd.ErrOrStderr(), tally.RenderTable())
	}
	if opts.metrics {
		if err := writeMetrics(cmd.ErrOrStderr(), registry); err != nil {
			return err
		}
	}
	return nil
}

// emit logs messages according to opts. Escalation is applied to the last
// message only, after every earlier message has been logged.
func emit(ctx context.Context, log *logger.Logger, severity logger.Severity, messages []string, opts *emitOptions) error {
	if opts.pretty {
		return log.LogPretty(severity, strings.Join(messages, "\n"))
	}

	for i, msg := range messages {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch {
		case opts.escalate && i == len(messages)-1:
			err = log.ErrorEscalate(msg)
		case opts.indent:
			err = log.LogIndent(severity, msg)
		default:
			err = log.Log(severity, msg)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func newLevelsCmd(hub *logger.Hub) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List severities and the prefixes of a logger id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := hub.New(id, logger.WithConsole(false))

			var rows [][]string
			for _, s := range logger.Severities() {
				prefix, err := log.Prefix(s)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					strconv.Itoa(int(s)),
					s.String(),
					strconv.Quote(prefix),
					strconv.Itoa(len(prefix)),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown([]string{"VALUE", "SEVERITY", "PREFIX", "WIDTH"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&id, "id", "n", "app", "logger id used in prefixes")
	return cmd
}

// readLines returns the lines of r without their line endings.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading standard input: %w", err)
	}
	return lines, nil
}

// writeMetrics prints every gathered counter as "name{labels} value".
func writeMetrics(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+strconv.Quote(lp.GetValue()))
			}
			fmt.Fprintf(w, "%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
		}
	}
	return nil
}

// renderMarkdown renders rows as a markdown table.
func renderMarkdown(headers []string, rows [][]string) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header(headers)
	table.Bulk(rows)
	table.Render()
	return buf.String()
}
