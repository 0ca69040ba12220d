package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kr/pretty"

	"go.creack.net/deriv/calculator"
	"go.creack.net/deriv/config"
	"go.creack.net/deriv/server"
)

type options struct {
	diffVar string
	showAST bool
}

// derive prints the derivative of input, or the error.
func derive(w io.Writer, input string, opts options) {
	res, err := calculator.Differentiate(input, opts.diffVar)
	if err != nil {
		_, _ = fmt.Fprintf(w, "%s: %s\n", calculator.ErrorOutput, err)
		return
	}
	if opts.showAST {
		_, _ = fmt.Fprintf(w, "%# v\n", pretty.Formatter(res.Expr))
	}
	_, _ = fmt.Fprintln(w, res.Output)
}

// repl reads one expression per line. ":var y" switches the variable.
func repl(r io.Reader, w io.Writer, opts options) error {
	scanner := bufio.NewScanner(r)
	for {
		_, _ = fmt.Fprintf(w, "d/d%s> ", calculator.NormalizeVar(opts.diffVar))
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(w)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "exit" || line == "quit":
			return nil
		case strings.HasPrefix(line, ":var"):
			opts.diffVar = calculator.NormalizeVar(strings.TrimPrefix(line, ":var"))
		default:
			derive(w, line, opts)
		}
	}
}

func main() {
	var (
		configPath = flag.String("config", "deriv.cfg", "Path to the configuration file.")
		serve      = flag.Bool("serve", false, "Run the HTTP and WebSocket server.")
		addr       = flag.String("addr", "", "Listen address, overrides the configuration.")
		diffVar    = flag.String("var", calculator.DefaultVar, "Variable to differentiate with respect to.")
		showAST    = flag.Bool("ast", false, "Print the parsed expression tree.")
		expr       = flag.String("e", "", "Differentiate this expression and exit.")
	)
	flag.Parse()

	opts := options{diffVar: *diffVar, showAST: *showAST}

	if *serve {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Fail: %s.", err)
		}
		if *addr != "" {
			cfg.Addr = *addr
		}
		if err := server.New(cfg).ListenAndServe(); err != nil {
			log.Fatalf("Fail: %s.", err)
		}
		return
	}

	if *expr != "" {
		derive(os.Stdout, *expr, opts)
		return
	}
	if err := repl(os.Stdin, os.Stdout, opts); err != nil {
		log.Fatalf("Fail: %s.", err)
	}
}
