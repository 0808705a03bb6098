package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chess-opponent/board"
	"chess-opponent/engine"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run per position")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	suiteFlag := flag.String("suite", "", "YAML file of positions to search instead of -fen")
	backendFlag := flag.String("backend", "dragon", "rules backend: "+strings.Join(board.Backends, ", "))
	seedFlag := flag.Uint64("seed", 0, "shuffle quiet moves with this seed (0 = no shuffle)")
	noCacheFlag := flag.Bool("nocache", false, "disable the transposition table")
	verboseFlag := flag.Bool("v", false, "debug logging")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verboseFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	suite, err := selectSuite(*suiteFlag, *fenFlag, *depthFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("load positions")
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	options := []engine.Option{engine.WithLogger(log.Logger)}
	if *seedFlag != 0 {
		options = append(options, engine.WithSeed(*seedFlag))
	}
	if *noCacheFlag {
		options = append(options, engine.WithoutCache())
	}

	fmt.Printf("searchbench: backend=%s positions=%d repeat=%d\n", *backendFlag, len(suite.Positions), *repeatFlag)

	startAll := time.Now()
	var totalNodes uint64
	for _, entry := range suite.Positions {
		nodes, err := run(entry, *backendFlag, *repeatFlag, options)
		if err != nil {
			log.Fatal().Err(err).Str("position", entry.Name).Msg("search failed")
		}
		totalNodes += nodes
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total: nodes=%d time=%v nps=%.0f\n", totalNodes, totalElapsed, float64(totalNodes)/totalElapsed.Seconds())

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not write memory profile")
		}
	}
}

// selectSuite prefers a suite file, then a single FEN, then the start position.
func selectSuite(path, fen string, depth int) (*Suite, error) {
	if path != "" {
		return loadSuite(path)
	}
	if fen == "" {
		fen = board.StartFEN
	}
	if depth <= 0 {
		return nil, fmt.Errorf("%w: %d", engine.ErrInvalidDepth, depth)
	}
	return &Suite{Depth: depth, Positions: []Entry{{Name: "fen", FEN: fen, Depth: depth}}}, nil
}

func run(entry Entry, backend string, repeat int, options []engine.Option) (uint64, error) {
	pos, err := board.Open(backend, entry.FEN)
	if err != nil {
		return 0, err
	}
	e, err := engine.New(entry.Depth, options...)
	if err != nil {
		return 0, err
	}

	var nodes uint64
	for i := 0; i < repeat; i++ {
		result := e.SearchRoot(pos, pos.SideToMove())
		stats := e.Stats()
		nodes += stats.Nodes
		fmt.Printf("%s iteration %d: depth=%d bestmove=%v score=%v nodes=%d time=%v\n",
			entry.Name, i+1, entry.Depth, result.Move, formatScore(result.Score), stats.Nodes, stats.Elapsed)
	}
	return nodes, nil
}

func formatScore(score engine.Score) string {
	if !engine.IsMateScore(score) {
		return fmt.Sprintf("%.1f", float64(score))
	}
	if score > 0 {
		return "mate+"
	}
	return "mate-"
}
