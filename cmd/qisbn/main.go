package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/theapemachine/qisbn"
	"github.com/urfave/cli"
)

// VERSION is populated via build flags when packaging release binaries.
var VERSION = "SELFBUILD"

func main() {
	if err := execute(os.Args, os.Stdout); err != nil {
		log.Println(err)
	}
}

// execute builds the app around w and runs it on args.
func execute(args []string, w io.Writer) error {
	myApp := cli.NewApp()
	myApp.Name = "qisbn"
	myApp.Usage = "validate an ISBN / EAN-13 check digit with a single qubit"
	myApp.ArgsUsage = "<isbn>"
	myApp.Version = VERSION
	myApp.Writer = w
	myApp.Action = func(c *cli.Context) error {
		run(w, c.Args().First())
		return nil
	}

	return myApp.Run(positional(args))
}

/*
positional keeps a candidate such as "-978-1-4920-3968-6" from being read
as a flag by ending flag parsing in front of it. Help and version flags
still go through.
*/
func positional(args []string) []string {
	if len(args) < 2 || !strings.HasPrefix(args[1], "-") {
		return args
	}

	switch args[1] {
	case "-h", "--help", "-v", "--version", "--":
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, args[0], "--")
	return append(out, args[1:]...)
}

// run validates isbn and prints the report followed by the circuit.
func run(w io.Writer, isbn string) {
	fmt.Fprintf(w, "Validating ISBN %s...\n", isbn)

	result := qisbn.NewValidator(qisbn.NewConfig()).Validate(isbn)
	if err := result.Report(w); err != nil {
		log.Println(err)
		return
	}

	if result.Circuit != nil {
		fmt.Fprintln(w)
		fmt.Fprint(w, result.Circuit.Draw())
	}
}
