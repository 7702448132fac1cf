// Command client prints amounts in Nepali words. Amounts come from the arguments,
// or one per line on stdin when there are none.
//
//	client 915.687 3201000
//	echo 1122172210321.12 | client --server http://localhost:8080
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rahack95/OSSRH-63090/config"
	"github.com/rahack95/OSSRH-63090/nepaliword"
	"github.com/rahack95/OSSRH-63090/pkg/nepaliwordclient"
	"github.com/spf13/pflag"
)

func main() {
	server := pflag.String("server", "", "URL of a nepaliword service; amounts are converted locally when empty")
	legacySpacing := pflag.Bool("legacy-spacing", false, "Use the legacy spacing of earlier releases (local conversion only)")
	digits := pflag.Bool("digits", false, "Also print the amount in Devanagari numerals")
	batchSize := pflag.Int("batch-size", config.DefaultMaxBatchSize, "Amounts sent per request; must not exceed the server's max_batch_size")
	pflag.Parse()

	amounts := pflag.Args()
	if len(amounts) == 0 {
		var err error
		amounts, err = readLines(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if *batchSize < 1 {
		fmt.Fprintln(os.Stderr, "--batch-size must be at least 1")
		os.Exit(2)
	}

	var conv converter
	if *server != "" {
		conv = remote{client: nepaliwordclient.New(*server), batchSize: *batchSize}
	} else {
		var opts []nepaliword.Option
		if *legacySpacing {
			opts = append(opts, nepaliword.WithLegacySpacing())
		}
		conv = local{converter: nepaliword.NewConverter(opts...)}
	}

	if failed := run(context.Background(), conv, amounts, *digits, os.Stdout, os.Stderr); failed > 0 {
		os.Exit(1)
	}
}

type converter interface {
	convert(ctx context.Context, amounts []string) []result
}

type result struct {
	amount string
	words  string
	err    error
}

type local struct {
	converter nepaliword.Converter
}

func (l local) convert(_ context.Context, amounts []string) []result {
	results := make([]result, len(amounts))
	for i, a := range amounts {
		words, err := l.converter.ConvertString(a)
		results[i] = result{amount: a, words: words, err: err}
	}
	return results
}

type remote struct {
	client    *nepaliwordclient.Client
	batchSize int
}

// convert sends the amounts in chunks of at most batchSize, one batch request each.
func (r remote) convert(ctx context.Context, amounts []string) []result {
	results := make([]result, 0, len(amounts))
	for start := 0; start < len(amounts); start += r.batchSize {
		end := min(start+r.batchSize, len(amounts))
		results = append(results, r.convertChunk(ctx, amounts[start:end])...)
	}
	return results
}

func (r remote) convertChunk(ctx context.Context, chunk []string) []result {
	results := make([]result, len(chunk))
	items, err := r.client.ConvertBatch(ctx, chunk)
	if err == nil && len(items) != len(chunk) {
		err = fmt.Errorf("nepaliword service returned %d items for %d amounts", len(items), len(chunk))
	}
	if err != nil {
		for i, a := range chunk {
			results[i] = result{amount: a, err: err}
		}
		return results
	}
	for i, item := range items {
		results[i] = result{amount: chunk[i]}
		switch {
		case item.Error != nil:
			results[i].err = fmt.Errorf("%s", item.Error)
		case item.Result != nil:
			results[i].words = item.Result.Words
		default:
			results[i].err = errors.New("nepaliword service returned an empty item")
		}
	}
	return results
}

// run writes one line per amount and returns the number of amounts that failed.
func run(ctx context.Context, conv converter, amounts []string, digits bool, stdout, stderr io.Writer) int {
	failed := 0
	for _, r := range conv.convert(ctx, amounts) {
		if r.err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", r.amount, r.err)
			failed++
			continue
		}
		if digits {
			fmt.Fprintf(stdout, "%s\t%s\n", nepaliword.Digits(r.amount), r.words)
		} else {
			fmt.Fprintln(stdout, r.words)
		}
	}
	return failed
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
