package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"shopledger/cli"
)

func main() {
	// optional .env carrying SHOPLEDGER_GEMINI_API_KEY; absence is fine
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
