package main

import (
	"log"

	"github.com/gradsift/gradsift/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
