// Command levelgen compiles tengo level scripts into a level set JSON file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/milk9111/tricolor/levels"
)

func main() {
	out := flag.String("o", "", "output file (stdout when empty)")
	watch := flag.Bool("watch", false, "rebuild whenever a script changes")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: levelgen [-o file] [-watch] script.tengo...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	scripts := flag.Args()
	if len(scripts) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := build(ctx, scripts, *out); err != nil {
		log.Error().Err(err).Msg("build")
		if !*watch {
			os.Exit(1)
		}
	}
	if !*watch {
		return
	}
	if err := watchAndBuild(ctx, scripts, *out); err != nil {
		log.Fatal().Err(err).Msg("watch")
	}
}

// build runs every script in order and writes the combined set.
func build(ctx context.Context, scripts []string, out string) error {
	set := &levels.Set{}
	for _, path := range scripts {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		part, err := levels.RunScript(ctx, src)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		set.Levels = append(set.Levels, part.Levels...)
	}

	data, err := levels.Encode(set)
	if err != nil {
		return err
	}
	if out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	log.Info().Int("levels", set.Len()).Str("out", out).Msg("wrote level set")
	return nil
}

func watchAndBuild(ctx context.Context, scripts []string, out string) error {
	events := make(chan string, len(scripts))
	for _, path := range scripts {
		w, err := levels.Watch(path)
		if err != nil {
			return err
		}
		defer w.Close()
		go func(w *levels.Watcher) {
			for {
				select {
				case p, ok := <-w.Events:
					if !ok {
						return
					}
					select {
					case events <- p:
					default:
					}
				case err, ok := <-w.Errors:
					if !ok {
						return
					}
					log.Warn().Err(err).Msg("watch")
				}
			}
		}(w)
	}

	log.Info().Strs("scripts", scripts).Msg("watching")
	for {
		select {
		case <-ctx.Done():
			return nil
		case p := <-events:
			log.Info().Str("path", p).Msg("script changed")
			if err := build(ctx, scripts, out); err != nil {
				log.Error().Err(err).Msg("build")
			}
		}
	}
}
