package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/ngrash/go-rfc3339/rfc3339"
)

var precisionFlag = flag.Int("p", -1, "Fixed number of fractional digits (0-9), -1 trims trailing zeros")

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()
	args := flag.Args()
	if len(args) > 0 {
		for _, arg := range args {
			if err := norm(arg); err != nil {
				return err
			}
		}
		return nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := norm(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}

func norm(s string) error {
	d, err := rfc3339.Parse(s)
	if err != nil {
		return fmt.Errorf("%q: %w", s, err)
	}
	if *precisionFlag >= 0 {
		d = d.WithPrecision(*precisionFlag)
	}
	fmt.Println(rfc3339.Format(d))
	return nil
}
