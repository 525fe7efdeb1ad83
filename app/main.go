package main

import (
	"log"
	"os"

	"github.com/vferreira/mos/internal/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mos: ")

	if err := cli.Execute(os.Args[1:]); err != nil {
		log.Fatal(err)
	}

}
