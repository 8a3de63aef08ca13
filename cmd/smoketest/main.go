// Command smoketest runs one clip through the commentary pipeline from the
// shell, printing the outcome and cleaning up the produced files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"vibe-commentator-bot/internal/config"
	"vibe-commentator-bot/internal/pipeline"
)

func main() {
	var (
		inPath     string
		vibe       string
		teamA      string
		teamB      string
		keyMoments string
		language   string
		provider   string
		keep       bool
	)

	flag.StringVar(&inPath, "input", "", "Path to a 10-30s silent sample clip (-i)")
	flag.StringVar(&inPath, "i", "", "Path to a 10-30s silent sample clip")
	flag.StringVar(&vibe, "vibe", "hype", "Commentary vibe: hype|calm analysis|british pundit|latin radio")
	flag.StringVar(&teamA, "team-a", "Sample United", "First team name")
	flag.StringVar(&teamB, "team-b", "Demo FC", "Second team name")
	flag.StringVar(&keyMoments, "key-moments", "Quick break, curling finish", "Key moments to call")
	flag.StringVar(&language, "language", "en", "Commentary language code")
	flag.StringVar(&provider, "provider", "", "TTS provider: gtts|local|remote (default from env)")
	flag.BoolVar(&keep, "keep", false, "Keep the produced files instead of releasing them")
	flag.Parse()

	if inPath == "" {
		log.Fatal("missing --input/-i clip path")
	}

	cfg := config.LoadConfig()
	if provider == "" {
		provider = cfg.DefaultTTSProvider
	}

	videoBytes, err := os.ReadFile(inPath)
	if err != nil {
		log.Fatalf("could not read clip: %v", err)
	}

	ctx := context.Background()
	processor, err := pipeline.NewDefaultProcessor(ctx, cfg)
	if err != nil {
		log.Fatalf("could not initialize pipeline: %v", err)
	}

	result, err := processor.Generate(ctx, pipeline.Request{
		VideoBytes:  videoBytes,
		Filename:    filepath.Base(inPath),
		Vibe:        vibe,
		TeamA:       teamA,
		TeamB:       teamB,
		KeyMoments:  keyMoments,
		Language:    language,
		TTSProvider: provider,
	})
	if err != nil {
		log.Fatalf("pipeline failed: %v", err)
	}

	fmt.Println("Commentary:", result.CommentaryText)
	fmt.Println("Status notes:", result.StatusNotes)
	fmt.Println("Audio path:", result.AudioPath)
	fmt.Println("Video path:", result.VideoPath)
	fmt.Printf("Duration: %.2fs\n", result.DurationSeconds)

	if !keep {
		result.Release()
	}
}
