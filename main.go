package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/xizzxy/NextMove/cmd"
)

func main() {
	// A missing .env file is fine; keys can come from the config file too.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
