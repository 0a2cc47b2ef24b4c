package main

// Score an answer from a file or stdin:
//   go run ./cmd/analyze -elapsed 60 answer.txt
//   cat answer.txt | go run ./cmd/analyze

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"placement-backend/internal/extract"
	"placement-backend/internal/textquality"
)

func main() {
	elapsed := flag.Int("elapsed", 0, "seconds spent writing or speaking the answer")
	points := flag.String("points", "", "comma-separated expected talking points")
	flag.Parse()

	text, err := readInput(flag.Arg(0))
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	analyzer := textquality.NewDefault()
	result := analyzer.AnalyzeText(textquality.Input{
		Text:           text,
		ElapsedSeconds: *elapsed,
	})

	out := map[string]any{"result": result}
	if *points != "" {
		expected := splitPoints(*points)
		coverage := analyzer.MatchCoverage(text, expected)
		out["coverage"] = coverage
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		log.Fatalf("encode result: %v", err)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text, err := extract.TextFromBytes(context.Background(), raw, "", path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

func splitPoints(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
