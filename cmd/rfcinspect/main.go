package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ngrash/go-rfc3339/rfc3339"
)

var unixFlag = flag.Bool("unix", false, "Also print seconds since the Unix epoch")

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		fmt.Println("Usage: rfcinspect <timestamp> [<timestamp> ...]")
		os.Exit(1)
	}
	for _, arg := range args {
		d, err := rfc3339.Parse(arg)
		if err != nil {
			fmt.Println("parsing:", err)
			os.Exit(1)
		}
		printDateTime(arg, d)
	}
}

func printDateTime(input string, d rfc3339.DateTime) {
	fmt.Println(input)
	fmt.Println("  canonical   =", rfc3339.Format(d))
	fmt.Println("  year        =", d.Time.Year)
	fmt.Println("  month       =", d.Time.Month)
	fmt.Println("  day         =", d.Time.Day)
	fmt.Println("  hour        =", d.Time.Hour)
	fmt.Println("  minute      =", d.Time.Minute)
	fmt.Println("  second      =", d.Time.Second)
	fmt.Println("  millisecond =", d.Time.Millisecond())
	fmt.Println("  microsecond =", d.Time.Microsecond())
	fmt.Println("  nanosecond  =", d.Time.Nanosecond())
	fmt.Println("  offset      =", d.Offset, fmt.Sprintf("(%s, %d seconds)", d.Offset.Form, d.Offset.SecondsFromUTC()))
	if *unixFlag {
		fmt.Println("  unix        =", d.Unix())
	}
	fmt.Println()
}
