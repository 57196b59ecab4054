// rfstrip-web serves an interactive strip plot of per-sample log response
// factors. The spreadsheet is loaded and cleaned once at startup; every
// request re-runs the pure sort/filter/point-build pipeline, so toggling a
// control is just a query-parameter change.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/chemplot/rfstrip/rfdata"
	"github.com/chemplot/rfstrip/xlsload"
)

var global *Global

func main() {
	errs := make(chan error, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig,
		os.Interrupt,
		syscall.SIGTERM,
	)

	var input, sheet string
	var port int
	flag.StringVar(&input, "input", "", "Path to the XLS spreadsheet exported by the analysis workflow.")
	flag.StringVar(&sheet, "sheet", xlsload.DefaultSheet, "Name of the worksheet to read.")
	flag.IntVar(&port, "port", 9019, "Port for HTTP server")
	flag.Parse()

	if input == "" {
		flag.PrintDefaults()
		return
	}

	table, err := xlsload.Load(input, sheet)
	if err != nil {
		log.Fatalln(err)
	}

	rows, rejected := rfdata.Clean(table)
	if len(rows) == 0 {
		log.Fatalln("No usable rows after cleaning", input)
	}

	global = &Global{
		Site:       "RF Strip Plot",
		log:        log.New(os.Stderr, log.Prefix(), log.Ldate|log.Ltime),
		SourcePath: input,
		SheetName:  sheet,
		rows:       rows,
		rejected:   rejected,
	}

	for _, rej := range rejected {
		global.log.Println("Skipped", rej.Error())
	}
	global.log.Printf("Cleaned %d rows (%d rejected) from %s\n", len(rows), len(rejected), input)

	handler, err := router(global)
	if err != nil {
		log.Fatalln(err)
	}

	go func() {
		global.log.Println("Starting HTTP server on port", port)
		if err := http.ListenAndServe(fmt.Sprintf(`:%d`, port), handler); err != nil {
			errs <- err
		}
	}()

	select {
	case sigl := <-sig:
		global.log.Printf("Exit: %s\n", sigl.String())
	case err := <-errs:
		global.log.Println("Exiting due to error", err)
		os.Exit(1)
	}
}
