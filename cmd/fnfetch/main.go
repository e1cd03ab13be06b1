// fnfetch is a small demonstration binary for the task package: it
// fetches a set of urls as one composed task, letting Traverse run the
// downloads concurrently under a bound, and reports the outcome.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/appliedfp/appfn/fn"
	"github.com/appliedfp/appfn/task"
	"github.com/btcsuite/btclog"
	"github.com/urfave/cli"
	"golang.org/x/exp/slices"
)

func main() {
	app := cli.NewApp()
	app.Name = "fnfetch"
	app.Usage = "fetch urls concurrently via task composition"
	app.ArgsUsage = "url [url...]"
	app.Flags = []cli.Flag{
		cli.DurationFlag{
			Name:  "timeout",
			Usage: "overall deadline for the whole fetch",
			Value: 30 * time.Second,
		},
		cli.IntFlag{
			Name:  "limit",
			Usage: "maximum number of concurrent fetches",
			Value: 4,
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable task debug logging on stderr",
		},
	}
	app.Action = fetch

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "[fnfetch]", err)
		os.Exit(1)
	}
}

// report is what a single completed fetch resolves to.
type report struct {
	url     string
	bytes   int64
	elapsed time.Duration
}

func fetch(ctx *cli.Context) error {
	urls := []string(ctx.Args())
	if len(urls) == 0 {
		_ = cli.ShowAppHelp(ctx)
		return errors.New("at least one url required")
	}

	if ctx.Bool("debug") {
		backend := btclog.NewBackend(os.Stderr)
		logger := backend.Logger("TASK")
		logger.SetLevel(btclog.LevelDebug)
		task.UseLogger(logger)
	}

	client := &http.Client{}

	fetchAll := task.Traverse(urls, func(url string) task.Task[report] {
		return fetchURL(client, url)
	}, ctx.Int("limit"))

	bounded := task.WithTimeout[[]report](ctx.Duration("timeout"))(fetchAll)

	reports, err := bounded.Run(context.Background())
	if err != nil {
		return err
	}

	// Largest responses first.
	slices.SortFunc(reports, func(a, b report) bool {
		return a.bytes > b.bytes
	})

	for _, r := range reports {
		fmt.Printf("%10d bytes  %12v  %s\n", r.bytes, r.elapsed, r.url)
	}

	total := fn.Foldl(reports, int64(0), func(acc int64, r report) int64 {
		return acc + r.bytes
	})
	fmt.Printf("%10d bytes total across %d urls\n", total, len(reports))

	return nil
}

// fetchURL builds the deferred fetch for a single url. Nothing happens
// until the composed task runs.
func fetchURL(client *http.Client, url string) task.Task[report] {
	return func(ctx context.Context) (report, error) {
		start := time.Now()

		req, err := http.NewRequestWithContext(
			ctx, http.MethodGet, url, nil,
		)
		if err != nil {
			return report{}, fmt.Errorf("build request for %s: %w",
				url, err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return report{}, fmt.Errorf("fetch %s: %w", url, err)
		}
		defer resp.Body.Close()

		n, err := io.Copy(io.Discard, resp.Body)
		if err != nil {
			return report{}, fmt.Errorf("read %s: %w", url, err)
		}

		return report{
			url:     url,
			bytes:   n,
			elapsed: time.Since(start),
		}, nil
	}
}
