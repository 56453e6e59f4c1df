package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/redis"
)

const (
	characterPattern  = "character:*"
	playerIndexPrefix = "character:player:"
)

// owned is the source/group pair every granted character row carries
type owned struct {
	kind   string
	id     string
	source entities.OwnerRef
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redis.NewClient(&redis.Config{URL: redisURL})
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning character aggregates...")

	iter := client.Scan(ctx, 0, characterPattern, 0).Iterator()

	var badKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, playerIndexPrefix) {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var character entities.Character
		if err := json.Unmarshal([]byte(data), &character); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s: %v\n", key, err)
			badKeys = append(badKeys, key)
			continue
		}

		if problems := check(&character); len(problems) > 0 {
			for _, p := range problems {
				fmt.Printf("✗ %s: %s\n", key, p)
			}
			badKeys = append(badKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d characters, found %d with problems\n", checkedCount, len(badKeys))
	if len(badKeys) > 0 {
		os.Exit(1)
	}
}

// check reports rows whose owner reference is not a known kind and classes
// without levels
func check(c *entities.Character) []string {
	var rows []owned
	for _, r := range c.AbilityBonuses {
		rows = append(rows, owned{kind: "ability_bonus", id: r.ID, source: r.Source})
	}
	for _, r := range c.Proficiencies {
		rows = append(rows, owned{kind: "proficiency", id: r.ID, source: r.Source})
	}
	for _, r := range c.Languages {
		rows = append(rows, owned{kind: "language", id: r.ID, source: r.Source})
	}
	for _, r := range c.Spells {
		rows = append(rows, owned{kind: "spell", id: r.ID, source: r.Source})
	}
	for _, r := range c.Inventory {
		rows = append(rows, owned{kind: "inventory", id: r.ID, source: r.Source})
	}
	for _, r := range c.Feats {
		rows = append(rows, owned{kind: "feat", id: r.ID, source: r.Source})
	}

	var problems []string
	for _, row := range rows {
		if !row.source.Kind.Valid() {
			problems = append(problems, fmt.Sprintf("%s row %s has unknown owner %q", row.kind, row.id, row.source.String()))
		}
	}
	for _, cls := range c.Classes {
		if cls.Level < 1 {
			problems = append(problems, fmt.Sprintf("class %s has level %d", cls.ClassSlug, cls.Level))
		}
	}
	return problems
}
