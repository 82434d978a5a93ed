package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/guildtools/runboard/internal/catalog"
	"github.com/guildtools/runboard/internal/extract"
	"github.com/guildtools/runboard/internal/imaging"
	"github.com/guildtools/runboard/internal/ocr"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("runboard %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		}
	}

	// Results go to stdout; everything else to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "extract":
		err = runExtract(os.Args[2:])
	case "seed":
		err = runSeed(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func printUsage() {
	fmt.Println("runboard - extract provisional guild runs from leaderboard screenshots")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  runboard extract [options] <screenshot>...")
	fmt.Println("  runboard seed [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  extract    OCR screenshots and print provisional runs as JSON")
	fmt.Println("  seed       load dungeon and player records into a catalog database")
	fmt.Println()
	fmt.Println("Run 'runboard <command> -h' for command options.")
}

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	catalogPath := fs.String("catalog", "", "catalog database file; omit to leave dungeons and players unresolved")
	lang := fs.String("lang", "eng", "Tesseract language code")
	maxImages := fs.Int("max-images", imaging.DefaultMaxImages, "maximum screenshots per invocation")
	width := fs.Int("width", 1920, "expected screenshot width in pixels (0 disables the check)")
	height := fs.Int("height", 1080, "expected screenshot height in pixels (0 disables the check)")
	preprocess := fs.Bool("preprocess", true, "preprocess regions before recognition")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no screenshot files given")
	}

	images, err := imaging.LoadBatch(fs.Args(), *maxImages, *width, *height)
	if err != nil {
		return err
	}

	extractor := &extract.Extractor{
		OCR:        ocr.NewTesseractRecognizer(*lang),
		Preprocess: *preprocess,
	}
	if *catalogPath != "" {
		store, err := catalog.OpenStore(*catalogPath)
		if err != nil {
			return err
		}
		defer store.Close()
		extractor.Dungeons = store
		extractor.Players = store
	}

	runs, err := extractor.ExtractAll(context.Background(), images)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(runs)
}

func runSeed(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	catalogPath := fs.String("catalog", "", "catalog database file (required)")
	dungeonFile := fs.String("dungeons", "", "dungeon list: one per line, 'locale=name' pairs separated by '|'")
	playerFile := fs.String("players", "", "player list: one name per line")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *catalogPath == "" {
		return fmt.Errorf("-catalog is required")
	}
	if *dungeonFile == "" && *playerFile == "" {
		return fmt.Errorf("nothing to seed: give -dungeons and/or -players")
	}

	store, err := catalog.OpenStore(*catalogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	if *dungeonFile != "" {
		n, err := seedDungeons(ctx, store, *dungeonFile)
		if err != nil {
			return err
		}
		log.Printf("seeded %d dungeons", n)
	}
	if *playerFile != "" {
		n, err := seedPlayers(ctx, store, *playerFile)
		if err != nil {
			return err
		}
		log.Printf("seeded %d players", n)
	}
	return nil
}

func seedDungeons(ctx context.Context, store *catalog.Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		names, err := parseDungeonLine(line)
		if err != nil {
			return count, err
		}
		if _, err := store.AddDungeon(ctx, names); err != nil {
			return count, err
		}
		count++
	}
	return count, scanner.Err()
}

// parseDungeonLine parses "en=Frost Hollow|de=Frosthöhle" into a locale map.
func parseDungeonLine(line string) (map[string]string, error) {
	names := make(map[string]string)
	for _, pair := range strings.Split(line, "|") {
		locale, name, ok := strings.Cut(pair, "=")
		locale = strings.TrimSpace(locale)
		name = strings.TrimSpace(name)
		if !ok || locale == "" || name == "" {
			return nil, fmt.Errorf("malformed dungeon entry %q (want locale=name)", pair)
		}
		names[locale] = name
	}
	return names, nil
}

func seedPlayers(ctx context.Context, store *catalog.Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		if _, err := store.AddPlayer(ctx, name); err != nil {
			return count, err
		}
		count++
	}
	return count, scanner.Err()
}
