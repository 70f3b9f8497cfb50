package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

const usage = `contrastx - WCAG contrast checker

Usage:
  contrastx [flags] FOREGROUND BACKGROUND
  contrastx batch [flags] [-f FILE]
  contrastx names [--prefix P] [-o FORMAT]
  contrastx serve [-p PORT] [--addr HOST] [--open]

Colors: #rgb, #rrggbb, rgb(r, g, b), hsl(h, s%, l%) or a CSS color name.

Flags:
  -o, --output FORMAT     table|tsv|json|ndjson|csv|markdown (default table)
      --color MODE        auto|always|never (default auto)
  -c, --criteria LIST     normal-aa,large-aa,normal-aaa,large-aaa,graphics (default all)
      --swatch            paint color swatches in table output
      --suggest           suggest a foreground that reaches --min-ratio
      --min-ratio N       target ratio for --suggest (default 4.5)
      --require LIST      exit 1 unless every listed criterion passes
      --config PATH       config file (default: search .contrastx.* and XDG)
  -f, --file PATH         batch input (default stdin)
  -p, --port N            serve port (default 8080)
      --addr HOST         serve bind address
      --open              open the page in a browser after starting
`

// errRequirement signals a --require failure; the result has already been
// printed so main exits without a message.
var errRequirement = errors.New("required criteria not met")

type app struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	tty     *os.File
	environ []string
	getenv  func(string) string
	cwd     string
}

func main() {
	log.SetFlags(0)
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	a := &app{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		tty:     os.Stdout,
		environ: os.Environ(),
		getenv:  os.Getenv,
		cwd:     cwd,
	}
	if err := a.run(os.Args[1:]); err != nil {
		if errors.Is(err, errRequirement) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func (a *app) run(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "batch":
			return a.batchCmd(args[1:])
		case "names":
			return a.namesCmd(args[1:])
		case "serve":
			return a.serveCmd(args[1:])
		case "help":
			a.printUsage()
			return nil
		}
	}
	return a.checkCmd(args)
}

func (a *app) printUsage() {
	_, _ = fmt.Fprint(a.stdout, usage)
}
