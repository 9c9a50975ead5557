// Command discourses is a small CLI for exercising the Discourses API:
//
//	discourses analyze -text "Strong growth ahead" [-era meme]
//	discourses compare -text "Diamond hands!" [-eras primitive,meme]
//	discourses batch [-era present] post_1="Bullish!" post_2="Bearish..."
//
// The API key is read from DISCOURSES_API_KEY; a local .env file is honored.
// Results print as indented JSON on stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	discourses "github.com/discourses/discourses-go"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env")
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	client, err := discourses.NewFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("client construction failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var result any
	switch os.Args[1] {
	case "analyze":
		result, err = runAnalyze(ctx, client, os.Args[2:])
	case "compare":
		result, err = runCompare(ctx, client, os.Args[2:])
	case "batch":
		result, err = runBatch(ctx, client, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("request failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatal().Err(err).Msg("encoding result")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  discourses analyze -text <text> [-era <era>]
  discourses compare -text <text> [-eras <era,era,...>]
  discourses batch [-era <era>] id=text [id=text ...]`)
}

func runAnalyze(ctx context.Context, c *discourses.Client, args []string) (any, error) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	text := fs.String("text", "", "text to analyze")
	era := fs.String("era", "", "era to analyze under (default: service default)")
	_ = fs.Parse(args)

	req := discourses.AnalyzeRequest{Text: *text}
	if *era != "" {
		e, err := discourses.ParseEra(*era)
		if err != nil {
			return nil, err
		}
		req.Era = e
	}
	return c.Analyze(ctx, req)
}

func runCompare(ctx context.Context, c *discourses.Client, args []string) (any, error) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	text := fs.String("text", "", "text to analyze")
	eras := fs.String("eras", "", "comma-separated eras (default: all)")
	_ = fs.Parse(args)

	req := discourses.CompareErasRequest{Text: *text}
	if *eras != "" {
		for _, raw := range strings.Split(*eras, ",") {
			e, err := discourses.ParseEra(raw)
			if err != nil {
				return nil, err
			}
			req.Eras = append(req.Eras, e)
		}
	}
	return c.CompareEras(ctx, req)
}

func runBatch(ctx context.Context, c *discourses.Client, args []string) (any, error) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	era := fs.String("era", "", "era to analyze under (default: service default)")
	_ = fs.Parse(args)

	var req discourses.BatchRequest
	if *era != "" {
		e, err := discourses.ParseEra(*era)
		if err != nil {
			return nil, err
		}
		req.Era = e
	}
	for _, arg := range fs.Args() {
		id, text, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("batch items must be id=text, got %q", arg)
		}
		req.Texts = append(req.Texts, discourses.BatchText{ID: id, Text: text})
	}
	return c.Batch(ctx, req)
}
