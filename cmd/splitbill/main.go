package main

import (
	"log"

	"github.com/jask/splitbill/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		log.Fatalf("splitbill: %v", err)
	}
}
