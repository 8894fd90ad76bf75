package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/percona-lab/linklab/config"
	"github.com/percona-lab/linklab/errors"
	"github.com/percona-lab/linklab/list"
	"github.com/percona-lab/linklab/log"
	"github.com/percona-lab/linklab/menu"
	"github.com/percona-lab/linklab/metrics"
	"github.com/percona-lab/linklab/records"
)

func main() {
	log.InitGlobals(zerolog.InfoLevel, false, false)

	reg := prometheus.NewRegistry()
	metrics.Init(reg)

	var metricsFile string

	rootCmd := newRootCmd()
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "",
		"Write metrics in Prometheus text format to this file on exit")

	err := rootCmd.Execute()

	if metricsFile != "" {
		if err1 := metrics.WriteTextfile(metricsFile, reg); err1 != nil {
			log.New("main").Error(err1, "Failed to write metrics")
		}
	}

	if err != nil {
		log.New("main").Error(err, "")
		os.Exit(1)
	}
}

// logOptions holds the persistent logging flags.
type logOptions struct {
	level   string
	json    bool
	noColor bool
}

func addLogFlags(fs *pflag.FlagSet, opts *logOptions) {
	fs.StringVar(&opts.level, "log-level", "info", "Log level")
	fs.BoolVar(&opts.json, "log-json", false, "Output log in JSON format")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable log color")
}

func newRootCmd() *cobra.Command {
	var logOpts logOptions

	rootCmd := &cobra.Command{
		Use:   "linklab",
		Short: "Linked list exercises",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logLevel, err := zerolog.ParseLevel(logOpts.level)
			if err != nil {
				return errors.Wrapf(err, "log level %q", logOpts.level)
			}

			lg := log.InitGlobals(logLevel, logOpts.json, logOpts.noColor)
			cmd.SetContext(lg.WithContext(cmd.Context()))

			return nil
		},
	}

	rootCmd.SilenceErrors = true

	addLogFlags(rootCmd.PersistentFlags(), &logOpts)

	rootCmd.AddCommand(newSListCmd(), newDListCmd(), newRecordsCmd())

	return rootCmd
}

func newSListCmd() *cobra.Command {
	var maxNodes int

	cmd := &cobra.Command{
		Use:   "slist",
		Short: "Interactive singly linked list counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			budget := list.NewBudget(maxNodes)
			session := menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), list.WithBudget(budget))

			return errors.Wrap(session.Run(cmd.Context()), "menu")
		},
	}

	cmd.Flags().IntVar(&maxNodes, "max-nodes", config.MaxNodes(),
		"Maximum number of nodes (0 = unlimited); defaults to $"+config.MaxNodesEnv)

	return cmd
}

func newDListCmd() *cobra.Command {
	var (
		capacity int
		values   []int
	)

	cmd := &cobra.Command{
		Use:   "dlist",
		Short: "Traverse an arena-backed doubly linked list in both directions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			return runDList(cmd.Context(), cmd.OutOrStdout(), capacity, values)
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", config.ArenaCapacity, "Arena capacity")
	cmd.Flags().IntSliceVar(&values, "values", []int{1, 2, 3, 4, 5},
		"Node values, exactly one per arena slot")

	return cmd
}

func runDList(ctx context.Context, w io.Writer, capacity int, values []int) error {
	l, err := list.NewArena[int](capacity).Build(values)
	if err != nil {
		return errors.Wrap(err, "build list")
	}

	defer func() {
		log.Ctx(ctx).With(log.Kind(list.KindDouble)).
			Debugf("Released %d arena nodes", l.Release())
	}()

	fmt.Fprint(w, "Forward: ")

	for v := range l.All() {
		fmt.Fprintf(w, "%d ", v)
	}

	fmt.Fprint(w, "\nBackward: ")

	for v := range l.Backward() {
		fmt.Fprintf(w, "%d ", v)
	}

	_, err = fmt.Fprintln(w)

	return errors.Wrap(err, "write")
}

func newRecordsCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "records -i <file.json>",
		Short: "Build a linked list of name/age records from a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			return runRecords(cmd.Context(), cmd.OutOrStdout(), input)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to the JSON document")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runRecords(ctx context.Context, w io.Writer, path string) error {
	ctx = log.Ctx(ctx).With(log.Path(path)).WithContext(ctx)

	src, err := records.OpenFile(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	defer func() {
		if err := src.Close(); err != nil {
			log.Ctx(ctx).Warn(err.Error())
		}
	}()

	l, err := records.Ingest(ctx, src)
	if err != nil {
		return errors.Wrap(err, "parse document")
	}

	defer l.Release()

	return records.Print(w, l)
}
