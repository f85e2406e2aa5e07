// Command bookcheck replays every line of an opening book and reports the
// first one that is not a legal game. With -sort it also rewrites the book
// in the sorted order the engine searches it in.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"princess-engine/engine"
)

func main() {
	path := flag.String("book", "book.dat", "opening book file")
	sortOut := flag.String("sort", "", "write the sorted book to this file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := check(*path); err != nil {
		var be *engine.BookError
		if errors.As(err, &be) {
			log.Error().Int("line", be.Line).Str("move", be.Move).Err(be.Err).Msg("bad-book-line")
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("read-book")
	}

	book, err := engine.LoadBookFile(*path, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("load-book")
	}
	fmt.Printf("%s: %d lines ok\n", *path, book.Len())

	if *sortOut != "" {
		if err := writeSorted(book, *sortOut); err != nil {
			log.Fatal().Err(err).Str("path", *sortOut).Msg("write-sorted")
		}
	}
}

func check(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return engine.ValidateBook(f)
}

func writeSorted(book *engine.Book, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := book.WriteSorted(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
