// geoplot renders the points of a stored survey project as SVG on
// stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Wagner-UFRRJ/agrimensura/export"
	"github.com/Wagner-UFRRJ/agrimensura/survey"
	"github.com/Wagner-UFRRJ/agrimensura/survey/boltstore"
	bolt "go.etcd.io/bbolt"
)

var (
	dataDir string
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <project-id>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&dataDir, "d", "agrimensura", "Path to the survey data directory")
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
}

func main() {
	db, err := bolt.Open(filepath.Join(dataDir, "survey.db"), 0600, &bolt.Options{ReadOnly: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open survey DB: %s\n", err)
		os.Exit(1)
	}
	store, err := boltstore.NewBoltStore(db)
	if err != nil {
		db.Close()
		fmt.Fprintf(os.Stderr, "Failed to open project store: %s\n", err)
		os.Exit(1)
	}
	defer store.Close()

	project, err := store.Get(survey.ProjectID(flag.Arg(0)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	out, err := project.Export(export.SVG{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render project: %s\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stdout, out)
}
