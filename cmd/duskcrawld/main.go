// Command duskcrawld runs the decision engine behind a small HTTP service:
// POST /decide takes a run-state snapshot and returns the next action.
package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"duskcrawl/decide"
	"duskcrawl/meta"
	"duskcrawl/searcher"
	"duskcrawl/transport"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	horizon := flag.Int("horizon", meta.DefaultHorizon, "expectimax search horizon")
	pretty := flag.Bool("pretty", false, "use human-readable console logging instead of JSON")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	engine := searcher.New(searcher.WithHorizon(*horizon), searcher.WithMetrics())
	sink := decide.ZerologSink{Logger: log.Logger}
	decider := decide.New(decide.WithEngine(engine), decide.WithSink(sink))

	srv := transport.NewServer(decider)

	log.Info().Str("addr", *addr).Int("horizon", *horizon).Msg("duskcrawld: starting decision service")
	if err := http.ListenAndServe(*addr, withRequestLog(srv.Handler())); err != nil {
		log.Fatal().Err(err).Msg("duskcrawld: server exited")
	}
}

// withRequestLog wraps a handler with a one-line access log per request.
// Logging stays at this layer; the engine itself never logs.
func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("duskcrawld: request handled")
	})
}
