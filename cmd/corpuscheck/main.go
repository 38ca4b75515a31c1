package main

import (
	"fmt"
	"ircfuzz/internal/app/infrastructure/config"
	"ircfuzz/internal/app/infrastructure/corpus"
	"log"
	"strings"
)

// Standalone sanity check for the identifier corpus files. Flags entries
// that would break line framing or target-list joining before a run picks
// them up.
func main() {
	manager, err := config.New("config.json")
	if err != nil {
		log.Fatal("Error loading config", err)
	}

	cfg := manager.Get()
	pool, err := corpus.Load(cfg.Corpus.ChannelsFile, cfg.Corpus.NicksFile)
	if err != nil {
		log.Fatal("Error loading corpus", err)
	}

	problems := 0
	problems += checkPool(cfg.Corpus.ChannelsFile, pool.Channels)
	problems += checkPool(cfg.Corpus.NicksFile, pool.Nicks)

	seen := make(map[string]string, len(pool.Union()))
	for _, token := range pool.Channels {
		seen[token] = cfg.Corpus.ChannelsFile
	}
	for _, token := range pool.Nicks {
		if other, ok := seen[token]; ok {
			fmt.Printf("%s: %q уже есть в %s\n", cfg.Corpus.NicksFile, token, other)
			problems++
		}
	}

	if problems > 0 {
		log.Fatalf("corpus check failed: %d problem(s)", problems)
	}
	fmt.Printf("corpus ok: %d channels, %d nicks\n", len(pool.Channels), len(pool.Nicks))
}

func checkPool(path string, tokens []string) int {
	problems := 0
	seen := make(map[string]int, len(tokens))

	for i, token := range tokens {
		if strings.ContainsAny(token, " ,\r\n\x00") {
			fmt.Printf("%s: %q содержит запрещённые символы\n", path, token)
			problems++
		}
		if prev, ok := seen[token]; ok {
			fmt.Printf("%s: %q дублирует строку %d\n", path, token, prev+1)
			problems++
			continue
		}
		seen[token] = i
	}

	return problems
}
