//go:build ignore

// Публикует запрос на перезагрузку набора данных и ждёт результат в stream:dataset:loaded.
//
//	go run scripts/test_publish.go -redis localhost:6379
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	reloadStream = "stream:dataset:reload"
	loadedStream = "stream:dataset:loaded"
)

type reloadEvent struct {
	RequestID   string    `json:"request_id"`
	RequestedBy string    `json:"requested_by,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

type loadedEvent struct {
	RequestID   string    `json:"request_id,omitempty"`
	Version     string    `json:"version,omitempty"`
	RecordCount int       `json:"record_count"`
	LoadedAt    time.Time `json:"loaded_at"`
	Error       string    `json:"error,omitempty"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	wait := flag.Duration("wait", 60*time.Second, "How long to wait for the loaded event")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := reloadEvent{
		RequestID:   uuid.NewString(),
		RequestedBy: "test_publish",
		RequestedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	messageID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: reloadStream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Reload requested\n")
	fmt.Printf("   Stream: %s\n", reloadStream)
	fmt.Printf("   Message ID: %s\n", messageID)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("\nWaiting for %s...\n", loadedStream)

	// Идентификаторы стримов монотонны по времени: результат будет позже запроса
	lastID := messageID
	deadline := time.Now().Add(*wait)

	for time.Now().Before(deadline) {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{loadedStream, lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			log.Fatalf("Failed to read %s: %v", loadedStream, err)
		}

		for _, stream := range results {
			for _, msg := range stream.Messages {
				lastID = msg.ID

				raw, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}
				var loaded loadedEvent
				if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
					continue
				}
				if loaded.RequestID != event.RequestID {
					continue
				}

				if loaded.Error != "" {
					fmt.Printf("Reload failed: %s\n", loaded.Error)
					return
				}
				fmt.Printf("Dataset reloaded\n")
				fmt.Printf("   Version: %s\n", loaded.Version)
				fmt.Printf("   Records: %d\n", loaded.RecordCount)
				fmt.Printf("   Loaded at: %s\n", loaded.LoadedAt.Format(time.RFC3339))
				return
			}
		}
	}

	fmt.Println("Timeout waiting for response")
}
