package main

// main.go implements the lrucache inspector CLI: it parses command-line
// flags, fetches diagnostic data from a target process exposing the
// library's debug snapshot endpoint, and prints it either as pretty text
// or JSON. It also supports periodic watch mode and pprof snapshot
// download. Prints per-shard hit/miss/eviction counters, since WithMetrics
// registers one Prometheus counter set per shard label.
//
// The target Go service is expected to expose:
//   - GET /debug/lrucache/snapshot   – JSON payload with cache statistics.
//   - GET /debug/pprof/{heap,goroutine} – standard pprof handlers (net/http/pprof).
//
// The snapshot object is intentionally generic; we decode into map[string]any
// to avoid version skew between CLI and library.
//
// © 2025 arena-cache authors. MIT License.

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var version = "dev"

type options struct {
	target            string
	json              bool
	watch             bool
	interval          time.Duration
	heapProfile       string
	goroutineProfile  string
	version           bool
}

func parseFlags() *options {
	o := &options{}
	flag.StringVar(&o.target, "target", "http://localhost:6060", "base URL of the instrumented process")
	flag.BoolVar(&o.json, "json", false, "print the raw snapshot as JSON instead of a formatted table")
	flag.BoolVar(&o.watch, "watch", false, "poll the snapshot endpoint repeatedly")
	flag.DurationVar(&o.interval, "interval", 2*time.Second, "polling interval in watch mode")
	flag.StringVar(&o.heapProfile, "heap-profile", "", "download a heap profile to this path and exit")
	flag.StringVar(&o.goroutineProfile, "goroutine-profile", "", "download a goroutine profile to this path and exit")
	flag.BoolVar(&o.version, "version", false, "print the CLI version and exit")
	flag.Parse()
	return o
}

func main() {
	opts := parseFlags()

	if opts.version {
		fmt.Println(version)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	if opts.heapProfile != "" {
		if err := downloadProfile(ctx, opts.target, "heap", opts.heapProfile); err != nil {
			fatal(err)
		}
		return
	}
	if opts.goroutineProfile != "" {
		if err := downloadProfile(ctx, opts.target, "goroutine", opts.goroutineProfile); err != nil {
			fatal(err)
		}
		return
	}

	if opts.watch {
		ticker := time.NewTicker(opts.interval)
		defer ticker.Stop()
		for {
			if err := dumpOnce(ctx, opts); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
			}
			select {
			case <-ticker.C:
				continue
			case <-ctx.Done():
				return
			}
		}
	}

	if err := dumpOnce(ctx, opts); err != nil {
		fatal(err)
	}
}

func dumpOnce(ctx context.Context, opts *options) error {
	snap, err := fetchSnapshot(ctx, opts.target)
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	return prettyPrint(snap)
}

func fetchSnapshot(ctx context.Context, base string) (map[string]any, error) {
	url := base + "/debug/lrucache/snapshot"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}
	var data map[string]any
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

// prettyPrint assumes the service renders per-shard counters as
// lrucache_hits_total{shard="N"} etc., the labels WithMetrics registers, and
// that the snapshot handler flattens them into a "shards" array of
// {shard, hits_total, misses_total, evictions_total, len, capacity}.
func prettyPrint(data map[string]any) error {
	shards, _ := data["shards"].([]any)
	if len(shards) == 0 {
		fmt.Println("no shard data in snapshot")
		return nil
	}
	fmt.Printf("%-6s %10s %10s %10s %8s %8s\n", "SHARD", "HITS", "MISSES", "EVICTIONS", "LEN", "CAP")
	for _, raw := range shards {
		s, _ := raw.(map[string]any)
		fmt.Printf("%-6v %10v %10v %10v %8v %8v\n",
			s["shard"], s["hits_total"], s["misses_total"], s["evictions_total"], s["len"], s["capacity"])
	}
	return nil
}

func downloadProfile(ctx context.Context, base, name, path string) error {
	url := fmt.Sprintf("%s/debug/pprof/%s", base, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", res.Status)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, res.Body); err != nil {
		return err
	}
	fmt.Printf("%s profile saved to %s\n", name, path)
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "lrucache-inspect:", err)
	os.Exit(1)
}
