// Ripple: A terminal-native messaging client
// Copyright (C) 2026 Kessym
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kessym/ripple/embeds"
	"github.com/kessym/ripple/internal/client"
	"github.com/kessym/ripple/internal/client/config"
)

func main() {
	version := flag.Bool("v", false, "print version information and exit")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	if *version {
		fmt.Println("version:", embeds.Version)
		fmt.Println("commit:", embeds.Commit)
		buildDate := embeds.BuildDate
		if buildDate != "unknown" {
			t, err := strconv.ParseInt(buildDate, 10, 64)
			if err == nil {
				buildDate = time.Unix(t, 0).Format("2006-01-02")
			}
		}
		fmt.Println("build date:", buildDate)
		return
	}

	setupLogging(*debug)

	if err := config.Load(); err != nil {
		log.Fatalln("loading config:", err)
	}

	if err := client.Run(); err != nil {
		log.Fatalln(err)
	}
}

// setupLogging routes everything through a rotated file; the terminal
// belongs to the ui.
func setupLogging(debug bool) {
	logDir := os.Getenv("RIPPLE_LOG_DIR")
	if logDir == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			log.Fatalln(err)
		}
		logDir = filepath.Join(cacheDir, "ripple")
	}
	err := os.MkdirAll(logDir, 0o750)
	if err != nil {
		log.Fatalln(err)
	}

	rotator := &lumberjack.Logger{
		Filename: filepath.Join(logDir, "client.log"),
		MaxSize:  10, // megabytes
		MaxAge:   28, // days
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(rotator, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(level)
}
