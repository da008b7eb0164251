package main

import (
	"flag"
	"log"

	"github.com/larschri/palettegen/header"
)

func main() {
	var opts header.Options
	flag.StringVar(&opts.Input, "in", header.DefaultInput, "palette file with one \"R, G, B\" record per line")
	flag.StringVar(&opts.Output, "out", header.DefaultOutput, "generated C header")
	flag.BoolVar(&opts.Strict, "strict", false, "require exactly 256 entries with components in 0..255")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("palettegen: ")

	if err := header.Generate(opts); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", opts.Output)
}
