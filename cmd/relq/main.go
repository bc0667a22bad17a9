// Command relq loads a tabular file (JSON, CSV or parquet) into an
// in-memory relation, applies query operations from flags and prints the
// result.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/GooBeMoO/associative-array/internal/loader"
	"github.com/GooBeMoO/associative-array/internal/logging"
	"github.com/GooBeMoO/associative-array/internal/output"
	"github.com/GooBeMoO/associative-array/internal/relation"
)

func main() {
	root := &cobra.Command{
		Use:   "relq file",
		Short: "Query a JSON, CSV or parquet file in memory",
		Long: `relq loads a tabular file into an in-memory relation and applies
projection, grouping, ordering and aggregation before printing the result.

Operations apply in a fixed order: select, group-by, order-by, limit.
--sum and --avg print a single scalar instead of rows.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.Flags()
	flags.StringSlice("select", nil, "fields to project")
	flags.StringSlice("group-by", nil, "fields forming the group key (first row per group wins)")
	flags.StringSlice("order-by", nil, "sort keys, each key or key:asc|desc")
	flags.String("sum", "", "print the numeric sum of this field")
	flags.String("avg", "", "print the numeric average of this field")
	flags.Int("limit", 0, "limit number of rows (0 = unlimited)")
	flags.StringP("format", "f", "table", "output format: json, jsonl, csv, table")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	level := slog.LevelWarn
	if verbose, _ := flags.GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	_, closeLog := logging.Setup(level)
	defer closeLog()

	rows, err := loader.Read(args[0])
	if err != nil {
		return errors.Wrapf(err, "loading %s", args[0])
	}
	rel := relation.New(relation.Rows(rows))

	if selectKeys, _ := flags.GetStringSlice("select"); len(selectKeys) > 0 {
		rel = rel.Select(selectKeys...)
	}

	if groupKeys, _ := flags.GetStringSlice("group-by"); len(groupKeys) > 0 {
		rel, err = rel.GroupBy(groupKeys...)
		if err != nil {
			return errors.Wrap(err, "group-by")
		}
	}

	if orderSpecs, _ := flags.GetStringSlice("order-by"); len(orderSpecs) > 0 {
		keys, dirs, err := parseOrderBy(orderSpecs)
		if err != nil {
			return err
		}
		rel, err = rel.OrderBy(keys, dirs...)
		if err != nil {
			return errors.Wrap(err, "order-by")
		}
	}

	if limit, _ := flags.GetInt("limit"); limit > 0 && rel.Len() > limit {
		rel = rel.Where(func(_ *relation.Row, i int) bool { return i < limit })
	}

	if sumKey, _ := flags.GetString("sum"); sumKey != "" {
		total, err := rel.Sum(sumKey)
		if err != nil {
			return errors.Wrap(err, "sum")
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatScalar(total))
		return nil
	}
	if avgKey, _ := flags.GetString("avg"); avgKey != "" {
		mean, err := rel.Avg(avgKey)
		if err != nil {
			return errors.Wrap(err, "avg")
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatScalar(mean))
		return nil
	}

	format, _ := flags.GetString("format")
	formatter, err := output.New(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return errors.Wrap(formatter.Format(rel), "formatting output")
}

// parseOrderBy splits key[:asc|desc] specs into keys and directions.
func parseOrderBy(specs []string) ([]string, []string, error) {
	keys := make([]string, len(specs))
	dirs := make([]string, len(specs))
	for i, spec := range specs {
		key, dir := spec, relation.Asc
		if k, d, found := strings.Cut(spec, ":"); found {
			key, dir = k, d
		}
		if key == "" {
			return nil, nil, errors.Errorf("empty sort key in %q", spec)
		}
		if dir != relation.Asc && dir != relation.Desc {
			return nil, nil, errors.Errorf("bad sort direction in %q (want asc or desc)", spec)
		}
		keys[i] = key
		dirs[i] = dir
	}
	return keys, dirs, nil
}

// formatScalar prints whole results without a trailing .000000.
func formatScalar(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
