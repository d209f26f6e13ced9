package main

import (
	"log"
	"os"

	"github.com/shaunak67/knownest-final/internal/app"
)

func main() {
	if err := app.Run(os.Stdout, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
