// main.go
//
// Backend data service for the roulette name picker
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of roulette-api.
// roulette-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// roulette-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with roulette-api.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/localnerve/roulette-api/data"
	"github.com/localnerve/roulette-api/internal/config"
	"github.com/localnerve/roulette-api/internal/database"
	"github.com/localnerve/roulette-api/internal/logging"
	"github.com/localnerve/roulette-api/internal/services"
)

const usage = `
Import users and names into the roulette database. Existing users (by
username) and names (by name) are left unchanged.

Usage:

seed [-h] [-f SEED_FILE]

SEED_FILE: path to a JSON seed file, "-" for stdin. The built-in default
           seed is used when omitted.

example
  seed -f /path/to/names.json
`

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var seedFilename string
	flag.StringVar(&seedFilename, "f", "", "path to the seed file")
	flag.Parse()

	if showHelp {
		fmt.Print(usage + "\n")
		return
	}

	os.Exit(run(seedFilename))
}

func run(seedFilename string) int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		return 1
	}
	logging.Setup(cfg)

	file, err := readSeed(seedFilename)
	if err != nil {
		slog.Error("Failed to read seed file", slog.String("file", seedFilename), slog.Any("error", err))
		return 1
	}

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		return 1
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		slog.Error("Failed to run migrations", slog.Any("error", err))
		return 1
	}

	stats, err := services.Seed(context.Background(), db, file)
	if err != nil {
		slog.Error("Seed failed", slog.Any("error", err))
		return 1
	}

	output, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Println(string(output))
	return 0
}

func readSeed(filename string) (*services.SeedFile, error) {
	var r io.Reader
	switch filename {
	case "":
		r = bytes.NewReader(data.DefaultSeed)
	case "-":
		r = os.Stdin
	default:
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return services.ParseSeed(r)
}
