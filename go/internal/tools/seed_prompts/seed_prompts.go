package main

import (
	"bufio"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/mcdev12/typerace/go/internal/dbconfig"
	"github.com/mcdev12/typerace/go/internal/race/prompt"
)

// Prompt is one curated prompt. IDs are derived from the text so reseeding
// the same file is a no-op.
type Prompt struct {
	ID     string
	Text   string
	Source string
}

func main() {
	_ = godotenv.Load()

	path := "config/prompts.txt"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// 1) Load the prompt file, one prompt per line
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open prompts: %v\n", err)
		os.Exit(1)
	}
	prompts, err := readPrompts(f, path)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read prompts: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	ctx := context.Background()
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, prompt.Schema); err != nil {
		fmt.Fprintf(os.Stderr, "create prompts table: %v\n", err)
		os.Exit(1)
	}

	// 3) Upsert and count
	var (
		total    = len(prompts)
		inserted int
		skipped  int
		errs     int
	)

	for _, p := range prompts {
		cmdTag, err := pool.Exec(ctx, `
            INSERT INTO prompts (id, text, source)
            VALUES ($1, $2, $3)
            ON CONFLICT (id) DO NOTHING
        `, p.ID, p.Text, p.Source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting prompt %s: %v\n", p.ID, err)
			errs++
			continue
		}
		if cmdTag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}

	// 4) Print summary
	fmt.Printf(
		"Prompts seed complete: %d total, %d inserted, %d skipped, %d errors\n",
		total, inserted, skipped, errs,
	)
}

// readPrompts parses one prompt per line. Blank lines and lines starting
// with '#' are skipped; duplicate texts are kept once.
func readPrompts(r io.Reader, source string) ([]Prompt, error) {
	var prompts []Prompt
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := strings.Join(strings.Fields(scanner.Text()), " ")
		if text == "" || strings.HasPrefix(text, "#") || seen[text] {
			continue
		}
		seen[text] = true
		sum := sha1.Sum([]byte(text))
		prompts = append(prompts, Prompt{
			ID:     "pr-" + hex.EncodeToString(sum[:6]),
			Text:   text,
			Source: source,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return prompts, nil
}
