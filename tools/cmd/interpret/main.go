package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"kabalot/pkg/receipt"
	"kabalot/pkg/recognize"
)

func main() {
	text := flag.Bool("text", false, "treat the file as already-recognized text, skipping OCR")
	flag.Parse()
	if flag.NArg() < 1 {
		log.Fatalf("usage: interpret [-text] <file>")
	}
	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("read: %v", err)
	}

	var out *receipt.Interpretation
	if *text {
		out = receipt.New(nil).InterpretText(string(data))
	} else {
		eng := receipt.New(recognize.NewTesseract())
		out, err = eng.InterpretImage(context.Background(), data)
		if err != nil {
			log.Fatalf("interpret: %v", err)
		}
	}
	enc, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(enc))
}
