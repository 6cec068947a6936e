// Package config holds the engine's global configuration, populated
// from defaults and optionally overridden by a TOML file.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path Setup reads from; relative to the working
// directory unless absolute. Tests and cmd/gambit may override it
// before calling Setup.
var ConfFile = "./gambit.toml"

// Settings holds the active configuration. Populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	Log    logConfig
	TT     ttConfig
	Eval   evalConfig
	Search searchConfig
}

type logConfig struct {
	Level   string // one of CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG
	LogPath string
}

type ttConfig struct {
	SizeMiB int
}

type evalConfig struct {
	UsePST bool
}

type searchConfig struct {
	UseQuiescence    bool
	UseTT            bool
	NodeCheckInterval uint64
}

func init() {
	Settings.Log.Level = "INFO"
	Settings.Log.LogPath = "./logs"

	Settings.TT.SizeMiB = 64

	Settings.Eval.UsePST = true

	Settings.Search.UseQuiescence = true
	Settings.Search.UseTT = true
	Settings.Search.NodeCheckInterval = 2048
}

// Setup reads ConfFile if present, overlaying it on the defaults set
// in init(), and is safe to call more than once: only the first call
// does any work.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Printf("config: %q not found or unreadable, using defaults (%v)", ConfFile, err)
	}
	Settings.TT.SizeMiB = clampTTSizeMiB(Settings.TT.SizeMiB)
	initialized = true
}

// clampTTSizeMiB restricts a configured TT size into [1, 1024] MiB,
// logging when a clamp was necessary so a misconfiguration is visible
// rather than silently applied.
func clampTTSizeMiB(mib int) int {
	switch {
	case mib < 1:
		log.Printf("config: tt size %d MiB out of range, clamped to 1 MiB", mib)
		return 1
	case mib > 1024:
		log.Printf("config: tt size %d MiB out of range, clamped to 1024 MiB", mib)
		return 1024
	default:
		return mib
	}
}
