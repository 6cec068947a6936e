// Package elog provides named, per-package loggers built on
// github.com/op/go-logging, writing to both stdout and a log file
// under the configured log directory.
package elog

import (
	golog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/tidewaterlabs/gambit/internal/config"
	"github.com/tidewaterlabs/gambit/internal/util"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:-7s} %{shortfile}: %{message}`,
)

var levelByName = map[string]logging.Level{
	"CRITICAL": logging.CRITICAL,
	"ERROR":    logging.ERROR,
	"WARNING":  logging.WARNING,
	"NOTICE":   logging.NOTICE,
	"INFO":     logging.INFO,
	"DEBUG":    logging.DEBUG,
}

// Get returns a logger named name, backed by a stdout backend and a
// file backend appending to "<name>.log" under
// config.Settings.Log.LogPath; the same file is reused across runs and
// is not rotated. If the log directory can't be
// resolved the logger still works, stdout-only.
func Get(name string) *logging.Logger {
	log := logging.MustGetLogger(name)

	level, ok := levelByName[strings.ToUpper(config.Settings.Log.Level)]
	if !ok {
		level = logging.INFO
	}

	stdoutBackend := logging.AddModuleLevel(logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stdout, "", 0), format))
	stdoutBackend.SetLevel(level, "")

	backends := []logging.Backend{stdoutBackend}

	if dir, err := util.ResolveCreateFolder(config.Settings.Log.LogPath); err != nil {
		golog.Printf("elog: log directory unavailable, stdout only: %v", err)
	} else {
		path := filepath.Join(dir, name+".log")
		if f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644); err != nil {
			golog.Printf("elog: could not open log file %q: %v", path, err)
		} else {
			fileBackend := logging.AddModuleLevel(logging.NewBackendFormatter(
				logging.NewLogBackend(f, "", 0), format))
			fileBackend.SetLevel(level, "")
			backends = append(backends, fileBackend)
			log.Infof("log %s started at %s", path, time.Now().Format(time.RFC3339))
		}
	}

	logging.SetBackend(backends...)
	return log
}
