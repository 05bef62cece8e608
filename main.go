package main

import (
	"log"

	"github.com/maelcorre/gridcap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("gridcap: %v", err)
	}
}
