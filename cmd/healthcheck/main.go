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
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/localnerve/roulette-api/internal/config"
	"github.com/localnerve/roulette-api/internal/database"
	"github.com/localnerve/roulette-api/internal/logging"
	"github.com/localnerve/roulette-api/internal/services"
)

func main() {
	var serverURL string
	flag.StringVar(&serverURL, "url", "", "also check that the API server accepts connections at this URL")
	flag.Parse()

	os.Exit(run(serverURL))
}

func run(serverURL string) int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		return 1
	}
	logging.Setup(cfg)

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		return 1
	}
	defer database.Close(db)

	// Perform health check
	ctx := context.Background()
	result := services.HealthCheck(ctx, cfg, db)
	if serverURL != "" {
		services.CheckServer(ctx, &result, serverURL)
	}

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		slog.Error("Failed to marshal health check result", slog.Any("error", err))
		return 1
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if !result.Healthy() {
		return 1
	}
	return 0
}
