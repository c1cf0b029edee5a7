// Command demosite starts a small website with seeded accessibility
// defects, for demonstrating the audit pipeline.
// Usage: go run ./cmd/demosite [port]
// Default port: 9999
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/seren4de/a11ylead/internal/demosite"
)

func main() {
	cfg := demosite.DefaultConfig()

	// Optional: custom port from command line
	if len(os.Args) > 1 {
		port, err := strconv.Atoi(os.Args[1])
		if err != nil || port < 1 || port > 65535 {
			log.Fatalf("Invalid port: %s", os.Args[1])
		}
		cfg.Port = port
	}

	fmt.Println("===========================================")
	fmt.Println("   a11ylead Demo Site")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Every page seeds known WCAG failures so a scan")
	fmt.Println("has something to find:")
	fmt.Println("  - Images without alt text")
	fmt.Println("  - Form controls without labels")
	fmt.Println("  - Low-contrast text")
	fmt.Println("  - Missing document language")
	fmt.Println("  - Empty links and buttons")
	fmt.Println()
	fmt.Println("Point the scanner at it:")
	fmt.Printf("  go run . -target http://localhost:%d\n", cfg.Port)
	fmt.Println()

	site := demosite.NewSite(cfg)
	if err := site.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
