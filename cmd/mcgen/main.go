// Command mcgen compiles the Minecraft version manifest into Go source.
//
// It is run by go generate in internal/mcversion:
//
//	go run ../../cmd/mcgen -config ../../mcgen.toml -cache ../../.cache/versions.json -out versions_gen.go
//
// The first run fetches the upstream manifest and one detail document per
// retained version, and stores the result in the cache file. Later runs
// compile from the cache without touching the network. Delete the cache
// to pick up new upstream versions.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/okc-dev/okc/internal/config"
	"github.com/okc-dev/okc/internal/errmsg"
)

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", config.GeneratorFile, "generator settings file (optional)")
	flag.StringVar(&opts.cache, "cache", "", "manifest cache file (default from config, then "+config.DefaultCacheFile+")")
	flag.StringVar(&opts.out, "out", "", "generated Go file (default from config, then "+config.DefaultOutput+")")
	flag.StringVar(&opts.pkg, "package", "", "package clause of the generated file")
	flag.StringVar(&opts.manifestURL, "manifest-url", "", "upstream version manifest URL")
	flag.DurationVar(&opts.timeout, "timeout", 0, "per-request HTTP timeout")
	flag.BoolVar(&opts.offline, "offline", false, "never fetch; fail if the cache file is missing")
	flag.BoolVar(&opts.check, "check", false, "fail if the generated file is out of date instead of writing it")
	flag.IntVar(&opts.verbosity, "v", 0, "log verbosity (1 = info, 2 = debug)")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "mcgen: unexpected arguments: %v\n", flag.Args())
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stderr); err != nil {
		errmsg.Fprint(os.Stderr, err)
		if errors.Is(err, errStale) {
			os.Exit(3)
		}
		os.Exit(1)
	}
}
