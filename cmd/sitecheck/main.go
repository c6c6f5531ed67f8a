// Render the live site in headless Chrome and verify its houses section.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"daysoflight/internal/houses"
	"daysoflight/internal/sitecheck"
)

func main() {
	url := flag.String("url", "http://localhost:8080/", "Page to check")
	timeout := flag.Duration("timeout", 60*time.Second, "Overall timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	html, err := sitecheck.Render(ctx, *url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	section, err := sitecheck.ParseHouses(strings.NewReader(html))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Source: %s\n", section.Source)
	if section.Loading != "" {
		fmt.Printf("Status: %s\n", section.Loading)
	}
	if section.Notice != "" {
		fmt.Printf("Notice: %s\n", section.Notice)
	}
	for _, c := range section.Cards {
		fmt.Printf("  %-22s %-12s %-18s %s\n", c.Name, c.Day, c.Time, c.Location)
	}

	if err := section.Check(houses.WelcomeText, houses.ComingSoonText); err != nil {
		fmt.Fprintf(os.Stderr, "Check failed:\n%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: %d houses rendered\n", len(section.Cards))
}
