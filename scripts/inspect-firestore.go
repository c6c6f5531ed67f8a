//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

func main() {
	projectID := flag.String("project", "", "GCP project ID")
	collection := flag.String("collection", "houses", "Firestore collection name")
	day := flag.String("day", "", "Filter by meeting day (optional)")
	limit := flag.Int("limit", 10, "Max documents to return (0 for all)")
	countOnly := flag.Bool("count", false, "Only show active/inactive counts")
	flag.Parse()

	if *projectID == "" {
		log.Fatal("-project is required")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, *projectID)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer client.Close()

	coll := client.Collection(*collection)

	if *countOnly {
		showCounts(ctx, coll)
		return
	}

	query := coll.OrderBy("order", firestore.Asc)
	if *day != "" {
		query = coll.Where("day", "==", *day)
	}
	if *limit > 0 {
		query = query.Limit(*limit)
	}

	iter := query.Documents(ctx)
	count := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Fatalf("Error iterating documents: %v", err)
		}

		jsonData, _ := json.MarshalIndent(doc.Data(), "", "  ")
		fmt.Printf("--- Document: %s ---\n%s\n\n", doc.Ref.ID, string(jsonData))
		count++
	}

	fmt.Printf("Total documents shown: %d\n", count)
}

func showCounts(ctx context.Context, coll *firestore.CollectionRef) {
	var active, inactive int
	batches := make(map[string]int)

	iter := coll.Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Fatalf("Error iterating documents: %v", err)
		}

		data := doc.Data()
		if isActive, _ := data["is_active"].(bool); isActive {
			active++
		} else {
			inactive++
		}
		if b, ok := data["batch_id"].(string); ok {
			batches[b]++
		}
	}

	fmt.Printf("Active:   %d\n", active)
	fmt.Printf("Inactive: %d\n", inactive)
	fmt.Printf("Total:    %d\n", active+inactive)
	for b, n := range batches {
		fmt.Printf("Batch %s: %d\n", b, n)
	}
}
