// Command gambit is a UCI chess engine.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tidewaterlabs/gambit/internal/config"
	"github.com/tidewaterlabs/gambit/internal/fen"
	"github.com/tidewaterlabs/gambit/internal/movegen"
	"github.com/tidewaterlabs/gambit/internal/uci"
	"github.com/tidewaterlabs/gambit/internal/version"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./gambit.toml", "path to configuration file")
	logPath := flag.String("logpath", "./logs", "path where to write log files to")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen (or the startpos) and exit")
	fenFlag := flag.String("fen", fen.StartFEN, "fen to use for -perft")
	doProfile := flag.Bool("profile", false, "write a CPU profile (cpu.pprof) for the run")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if *logPath != "./logs" {
		config.Settings.Log.LogPath = *logPath
	}

	if *perftDepth > 0 {
		runPerft(*fenFlag, *perftDepth)
		return
	}

	uci.NewHandler().Loop()
}

func runPerft(fenStr string, depth int) {
	p, err := fen.Parse(fenStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gambit: bad fen: %v\n", err)
		os.Exit(1)
	}
	for d := 1; d <= depth; d++ {
		nodes := movegen.Perft(p, d)
		out.Printf("perft %d: %d\n", d, nodes)
	}
}

func printVersionInfo() {
	out.Printf("gambit %s\n", version.Version())
	out.Printf("  go version %s\n", runtime.Version())
	out.Printf("  %s/%s, %d CPUs\n", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  working directory: %s\n", cwd)
}
