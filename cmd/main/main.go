package main

import (
	"log"
	"ircfuzz/internal/pkg/app"
)

func main() {
	if err := app.New(); err != nil {
		log.Fatal(err)
	}
}
