package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"

	latitude "github.com/NewtTheWolf/latitude-go"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	projectID, err := strconv.Atoi(os.Getenv("LATITUDE_PROJECT_ID"))
	if err != nil {
		log.Fatal("LATITUDE_PROJECT_ID must be set to a project number")
	}

	client := latitude.New(os.Getenv("LATITUDE_API_KEY"),
		latitude.WithProjectID(projectID),
	)

	events, err := client.RunStream(ctx, latitude.RunDocument{
		Path: "workers/emotion-analyzer",
		Parameters: map[string]any{
			"user_message": "Hello, world!",
		},
	})
	if err != nil {
		log.Fatalf("failed to start stream: %v", err)
	}

	for event := range events {
		switch ev := event.(type) {
		case latitude.TextDeltaEvent:
			fmt.Print(ev.TextDelta)
		case latitude.ErrorEvent:
			log.Fatalf("provider error: %s", ev.ErrorMessage)
		case latitude.ChainCompleteEvent:
			fmt.Printf("\n\ntokens used: %d\n", ev.Response.Usage.TotalTokens)
		}
	}
}
