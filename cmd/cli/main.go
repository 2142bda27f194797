package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"newsillustrator/internal/app"
	"newsillustrator/internal/config"
	"newsillustrator/internal/logging"
	"newsillustrator/pkg/llm"
	"newsillustrator/pkg/news"
)

func main() {
	modeFlag := flag.String("mode", "", "headline or summary (defaults to PIPELINE_MODE)")
	source := flag.String("source", "", "illustrate the latest story from finnhub or alphavantage instead of reading stdin")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	// stdout is for results
	logging.Init(os.Stderr, cfg.LogLevel)

	defaultMode, err := cfg.Mode()
	if err != nil {
		log.Fatalf("error reading pipeline mode: %v", err)
	}
	mode, err := llm.ParseMode(*modeFlag, defaultMode)
	if err != nil {
		log.Fatalf("invalid -mode: %v", err)
	}

	ctx := context.Background()

	newsClient, err := app.NewNewsClient(cfg, *source)
	if err != nil {
		log.Fatalf("error configuring news source: %v", err)
	}

	var article string
	if newsClient != nil {
		latest, err := news.Latest(ctx, newsClient)
		if err != nil {
			log.Fatalf("error fetching latest article from %s: %v", newsClient.Name(), err)
		}
		fmt.Printf("Latest %s article: %s (%s)\n", newsClient.Name(), latest.Headline, latest.URL)
		article = latest.Text()
	} else {
		article, err = readArticle(os.Stdin, os.Stdout)
		if err != nil {
			log.Fatalf("error reading article: %v", err)
		}
	}

	p, cleanup, err := app.NewPipeline(ctx, cfg)
	if err != nil {
		log.Fatalf("error building pipeline: %v", err)
	}
	defer cleanup()

	fmt.Printf("\nGenerating %s and sentiment...\n", mode)

	res, err := p.Run(ctx, article, mode)
	if err != nil {
		cleanup()
		log.Fatalf("%v", err)
	}

	fmt.Printf("\nText Response:\n%s\n", res.Completion)
	if mode == llm.ModeSummary {
		fmt.Printf("\nSummary: %s\nSentiment: %s\n", res.Text, res.Sentiment)
	} else {
		fmt.Printf("\nHeadline: %s\n", res.Text)
	}
	fmt.Printf("\nImage saved at: %s\n", res.ImagePath)
}

func readArticle(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter the full text of the news article: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
