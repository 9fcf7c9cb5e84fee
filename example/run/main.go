package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	latitude "github.com/NewtTheWolf/latitude-go"
)

func main() {
	projectID, err := strconv.Atoi(os.Getenv("LATITUDE_PROJECT_ID"))
	if err != nil {
		log.Fatal("LATITUDE_PROJECT_ID must be set to a project number")
	}

	client := latitude.New(os.Getenv("LATITUDE_API_KEY"),
		latitude.WithProjectID(projectID),
	)

	resp, err := client.Run(context.Background(), latitude.RunDocument{
		Path: "workers/emotion-analyzer",
		Parameters: map[string]any{
			"user_message": "Hello, world!",
		},
	})
	if err != nil {
		log.Fatalf("failed to run document: %v", err)
	}

	fmt.Println(resp.Response.Text)
	fmt.Printf("tokens used: %d\n", resp.Response.Usage.TotalTokens)
}
