// dbinspect is a maintenance tool to look at the raw content of a
// survey BoltDB file.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	bolt "go.etcd.io/bbolt"
)

var (
	dbName = "survey.db"

	dataDir string

	bucket string

	keyAcceptor = func(string) bool { return true }

	printKey   bool
	printValue bool
	keyFilter  string

	exe  command
	args []string

	commands = []command{
		{"buckets", listBuckets, func() *flag.FlagSet {
			flags := flag.NewFlagSet("buckets", flag.ExitOnError)
			flags.StringVar(&bucket, "b", "", "Bucket to inspect")
			return flags
		}, true},
		{"entries", listEntries, func() *flag.FlagSet {
			flags := flag.NewFlagSet("entries", flag.ExitOnError)
			flags.StringVar(&bucket, "b", "projects", "Bucket to inspect")
			flags.BoolVar(&printKey, "k", false, "Output keys")
			flags.BoolVar(&printValue, "v", false, "Output values")
			flags.StringVar(&keyFilter, "kf", "", "Key regex filter")
			return flags
		}, true},
		{"deleteBucket", deleteBucket, func() *flag.FlagSet { return nil }, false},
	}
)

type cmdFunc func(*bolt.Tx) error

type flagSetFunc func() *flag.FlagSet

type command struct {
	name     string
	run      cmdFunc
	flags    flagSetFunc
	readonly bool
}

func getCommand(args []string) (command, *flag.FlagSet, error) {
	if len(args) == 0 {
		return commands[0], commands[0].flags(), nil
	}
	for i := range commands {
		if args[0] == commands[i].name {
			return commands[i], commands[i].flags(), nil
		}
	}
	return command{}, nil, fmt.Errorf("No such command: %s", args[0])
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [command] [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "[command] is one of\n")
		for _, c := range commands {
			fmt.Fprintf(os.Stderr, "\t%s\n", c.name)
		}
		flag.PrintDefaults()
	}
	flag.StringVar(&dataDir, "d", "agrimensura", "Path to the survey data directory")

	flag.Parse()

	var err error
	var flags *flag.FlagSet
	exe, flags, err = getCommand(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		flag.Usage()
		os.Exit(1)
	}
	if flag.NArg() > 0 {
		args = flag.Args()[1:]
	}
	if flags != nil {
		flags.Parse(args)
		args = flags.Args()
	}
}

func listBuckets(tx *bolt.Tx) error {
	if bucket != "" {
		return tx.Bucket([]byte(bucket)).ForEach(func(k, v []byte) error {
			if v == nil {
				fmt.Fprintln(os.Stdout, string(k))
			}
			return nil
		})
	}
	return tx.ForEach(func(name []byte, bucket *bolt.Bucket) error {
		fmt.Fprintln(os.Stdout, string(name))
		return nil
	})
}

func deleteBucket(tx *bolt.Tx) (err error) {
	for _, b := range args {
		fmt.Fprintf(os.Stderr, "Deleting bucket %s\n", b)
		if err = tx.DeleteBucket([]byte(b)); err != nil {
			return
		}
	}
	return
}

func listEntries(tx *bolt.Tx) error {
	if keyFilter != "" {
		keyRE, err := regexp.Compile(keyFilter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bad key filter RE: %s\n", err)
			os.Exit(2)
		}
		keyAcceptor = keyRE.MatchString
	}

	b := tx.Bucket([]byte(bucket))
	if b == nil {
		return fmt.Errorf("No such bucket: %s", bucket)
	}
	count := 0
	defer func() {
		fmt.Printf("  %d entries\n", count)
	}()
	return b.ForEach(func(k, v []byte) error {
		if !keyAcceptor(string(k)) {
			return nil
		}
		count++
		sep, end := "", ""
		if printKey {
			fmt.Fprintf(os.Stdout, "%s", string(k))
			sep = ":"
			end = "\n"
		}
		if printValue {
			fmt.Fprintf(os.Stdout, "%s%s", sep, string(v))
			end = "\n"
		}
		fmt.Fprintf(os.Stdout, "%s", end)
		return nil
	})
}

func main() {
	dbPath := filepath.Join(dataDir, dbName)
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{ReadOnly: exe.readonly})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open Bolt DB at %s: %s", dbPath, err)
		os.Exit(1)
	}
	defer db.Close()

	if exe.readonly {
		err = db.View(exe.run)
	} else {
		err = db.Update(exe.run)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error while executing: %s", err)
		os.Exit(1)
	}
}
