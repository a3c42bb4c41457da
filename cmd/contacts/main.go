package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kessym/ripple/internal/client/config"
	"github.com/kessym/ripple/internal/contacts"
	"github.com/kessym/ripple/internal/mention"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: contacts [-group] add <id> <name>")
	fmt.Fprintln(os.Stderr, "       contacts [-group] del <id>")
	fmt.Fprintln(os.Stderr, "       contacts [-group] show <id>")
	os.Exit(2)
}

func main() {
	group := flag.Bool("group", false, "operate on the open-group namespace")
	flag.Usage = usage
	flag.Parse()

	if err := config.Load(); err != nil {
		log.Fatalln("loading config:", err)
	}

	store, err := contacts.Open(config.Read().ContactsPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer store.Close()

	scope := mention.ScopeRegular
	if *group {
		scope = mention.ScopeOpenGroup
	}

	args := flag.Args()
	switch {
	case len(args) == 3 && args[0] == "add":
		if err := store.Put(args[1], scope, args[2]); err != nil {
			log.Fatalln(err)
		}

	case len(args) == 2 && args[0] == "del":
		if err := store.Delete(args[1], scope); err != nil {
			log.Fatalln(err)
		}

	case len(args) == 2 && args[0] == "show":
		name, ok := store.Lookup(args[1], scope)
		if !ok {
			fmt.Fprintln(os.Stderr, "no contact for", args[1])
			os.Exit(1)
		}
		fmt.Println(name)

	default:
		usage()
	}
}
