// One-shot CLI: repurpose a file (or stdin) into a target format and
// print the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/satyam3824/content-repurposer/pkg/llm"
	"github.com/satyam3824/content-repurposer/pkg/repurpose"
)

var (
	inputFile string
	format    string
	audience  string
	tone      string
	length    int
	numSlides int
	verbose   bool
)

func main() {
	flag.StringVar(&inputFile, "file", "", "Path to the content file (default: read stdin)")
	flag.StringVar(&format, "format", "blog_post", "Target format: blog_post, tweet_thread or instagram_carousel")
	flag.StringVar(&audience, "audience", "", "Target audience (blog_post only)")
	flag.StringVar(&tone, "tone", "", "Tone override")
	flag.IntVar(&length, "length", 0, "Approximate length in words (blog_post only, 100-1000)")
	flag.IntVar(&numSlides, "slides", 0, "Number of slides (instagram_carousel only, 3-10)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	godotenv.Load()

	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	content, err := readContent(inputFile)
	if err != nil {
		slog.Error("failed to read content", "error", err)
		os.Exit(1)
	}

	target, err := repurpose.ParseFormat(format)
	if err != nil {
		slog.Error("unknown format", "format", format)
		os.Exit(1)
	}

	client, err := llm.NewFromEnv()
	if err != nil {
		slog.Error("failed to build LLM client", "error", err)
		os.Exit(1)
	}

	service, err := repurpose.NewService(client)
	if err != nil {
		slog.Error("failed to build service", "error", err)
		os.Exit(1)
	}

	params := repurpose.Params{
		Audience:  audience,
		Tone:      tone,
		Length:    length,
		NumSlides: numSlides,
	}

	slog.Debug("repurposing content", "format", target, "model", client.ModelName())

	result, err := service.Repurpose(context.Background(), content, target, params)
	if err != nil {
		slog.Error("repurposing failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(result)
}

func readContent(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
