package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/colossus/internal/config"
	"github.com/peterkuimelis/colossus/internal/game"
	gamelog "github.com/peterkuimelis/colossus/internal/log"
	colnet "github.com/peterkuimelis/colossus/internal/net"
	"github.com/peterkuimelis/colossus/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch os.Args[1] {
	case "host":
		runHost(ctx, cfg, os.Args[2:])
	case "join":
		runJoin(ctx, os.Args[2:])
	case "catalog":
		runCatalog(os.Args[2:])
	case "sim":
		runSim(ctx, cfg, os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  colossus-cli host [--deck N] [--port P] [--decks FILE] [--db FILE]")
	fmt.Println("  colossus-cli join [--deck N] [--addr ADDR]")
	fmt.Println("  colossus-cli catalog [--out FILE]")
	fmt.Println("  colossus-cli sim [--deck0 N] [--deck1 N] [--seed S] [--decks FILE] [--save] [--db FILE]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  host     Start a game server and play as Player 1")
	fmt.Println("  join     Connect to a game server and play as Player 2")
	fmt.Println("  catalog  Export the card catalog as YAML")
	fmt.Println("  sim      Play two automatic players against each other")
	fmt.Println()
	fmt.Println("Defaults come from COLOSSUS_* environment variables.")
}

// saver opens the match store at path and returns a callback that records
// finished duels, or nil when path is empty.
func saver(path string, seed int64) (func(id string, d *game.Duel, deck0, deck1 string), func()) {
	if path == "" {
		return nil, func() {}
	}
	st, err := store.Open(path)
	if err != nil {
		log.Printf("match history disabled: %v", err)
		return nil, func() {}
	}
	save := func(id string, d *game.Duel, deck0, deck1 string) {
		m := store.MatchFromSnapshot(id, d.Snapshot(), deck0, deck1, seed)
		if err := st.SaveMatch(context.Background(), m); err != nil {
			log.Printf("save match: %v", err)
			return
		}
		log.Printf("match saved as %s", id)
	}
	return save, func() { _ = st.Close() }
}

func runHost(ctx context.Context, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("host", flag.ExitOnError)
	deck := fs.Int("deck", 1, "deck number to use (from the decks file)")
	port := fs.String("port", cfg.Port, "TCP port to listen on")
	decksFile := fs.String("decks", cfg.DecksFile, "path to decks file")
	db := fs.String("db", "", "SQLite file to record the match in (empty to skip)")
	fs.Parse(args)

	save, closeStore := saver(*db, cfg.Seed)
	defer closeStore()

	srv := &colnet.Server{
		DeckFile: *decksFile,
		Port:     *port,
		HostDeck: *deck,
		Rules:    cfg.Rules,
		Seed:     cfg.Seed,
		MaxTurns: cfg.MaxTurns,
	}
	if save != nil {
		srv.OnFinish = func(d *game.Duel, deck0, deck1 string) {
			save(store.NewMatchID(), d, deck0, deck1)
		}
	}

	if err := srv.Run(ctx); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func runJoin(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	deck := fs.Int("deck", 2, "deck number to use (from the host's decks file)")
	addr := fs.String("addr", "localhost:9000", "server address to connect to")
	fs.Parse(args)

	if err := colnet.Connect(ctx, *addr, *deck); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func runCatalog(args []string) {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	out := fs.String("out", "", "file to write (default stdout)")
	fs.Parse(args)

	if err := game.ValidateCatalog(); err != nil {
		config.Exitf("Error: %v", err)
	}
	data, err := yaml.Marshal(map[string]any{"cards": game.Catalog()})
	if err != nil {
		config.Exitf("Error: marshal catalog: %v", err)
	}
	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func runSim(ctx context.Context, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	deck0 := fs.Int("deck0", 1, "P1 deck number")
	deck1 := fs.Int("deck1", 2, "P2 deck number")
	seed := fs.Int64("seed", cfg.Seed, "random seed (0 for a random game)")
	maxTurns := fs.Int("max-turns", cfg.MaxTurns, "stop after this many turns")
	decksFile := fs.String("decks", cfg.DecksFile, "path to decks file")
	quiet := fs.Bool("quiet", false, "only print the result")
	save := fs.Bool("save", false, "record the match in the SQLite history")
	db := fs.String("db", cfg.DBPath, "SQLite file used with --save")
	fs.Parse(args)

	name0, cards0, err := game.DeckByNumber(*decksFile, *deck0, cfg.Rules)
	if err != nil {
		config.Exitf("Error: P1 deck: %v", err)
	}
	name1, cards1, err := game.DeckByNumber(*decksFile, *deck1, cfg.Rules)
	if err != nil {
		config.Exitf("Error: P2 deck: %v", err)
	}

	var logger gamelog.EventLogger = gamelog.NewTextLogger(os.Stdout)
	if *quiet {
		logger = gamelog.NewMemoryLogger()
	}
	d := game.NewDuel(game.DuelConfig{
		Deck0:    cards0,
		Deck1:    cards1,
		Rules:    cfg.Rules,
		Logger:   logger,
		Seed:     *seed,
		MaxTurns: *maxTurns,
	}, game.AutoController{}, game.AutoController{})

	if _, err := d.Run(ctx); err != nil {
		config.Exitf("Error: %v", err)
	}

	snap := d.Snapshot()
	fmt.Printf("%s vs %s: %s after %d rounds\n", name0, name1, snap.Result, snap.Round)
	fmt.Printf("P1 health %d gold %d | P2 health %d gold %d | bank %d\n",
		snap.Players[0].Health, snap.Players[0].Gold, snap.Players[1].Health, snap.Players[1].Gold, snap.Bank)

	if *save {
		record, closeStore := saver(*db, *seed)
		defer closeStore()
		if record != nil {
			record(store.NewMatchID(), d, name0, name1)
		}
	}
}
