// containers.go
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

package testutil

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/localnerve/roulette-api/internal/config"
	"github.com/localnerve/roulette-api/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

const (
	containerDatabase = "roulette"
	containerUser     = "roulette"
	containerPassword = "roulette-test"
)

// DatabaseContainer is a disposable database server.
type DatabaseContainer struct {
	Container testcontainers.Container
	Config    *config.Config
}

// Terminate stops and removes the container.
func (dc *DatabaseContainer) Terminate(ctx context.Context) error {
	if dc == nil || dc.Container == nil {
		return nil
	}
	return dc.Container.Terminate(ctx)
}

// containerSpec describes how to run a database image.
type containerSpec struct {
	port string
	env  map[string]string
}

func specFor(dbType string) (containerSpec, error) {
	switch dbType {
	case "mysql", "mariadb":
		return containerSpec{
			port: "3306",
			env: map[string]string{
				"MYSQL_ROOT_PASSWORD": containerPassword,
				"MYSQL_DATABASE":      containerDatabase,
				"MYSQL_USER":          containerUser,
				"MYSQL_PASSWORD":      containerPassword,
			},
		}, nil
	case "postgres", "postgresql":
		return containerSpec{
			port: "5432",
			env: map[string]string{
				"POSTGRES_DB":       containerDatabase,
				"POSTGRES_USER":     containerUser,
				"POSTGRES_PASSWORD": containerPassword,
			},
		}, nil
	}
	return containerSpec{}, fmt.Errorf("no container support for database type: %s", dbType)
}

// StartDatabase runs image as a dbType server and returns a config that
// reaches it through the mapped port.
func StartDatabase(ctx context.Context, dbType, image string) (*DatabaseContainer, error) {
	spec, err := specFor(dbType)
	if err != nil {
		return nil, err
	}
	tcpPort, err := nat.NewPort("tcp", spec.port)
	if err != nil {
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env:          spec.env,
			WaitingFor:   wait.ForListeningPort(tcpPort).WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", image, err)
	}
	dc := &DatabaseContainer{Container: container}

	host, err := container.Host(ctx)
	if err != nil {
		_ = dc.Terminate(ctx)
		return nil, err
	}
	mapped, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		_ = dc.Terminate(ctx)
		return nil, err
	}

	dc.Config = &config.Config{
		Port:              "8000",
		CORSOrigin:        "http://localhost:3000",
		DBType:            dbType,
		DBHost:            host,
		DBPort:            mapped.Port(),
		DBDatabase:        containerDatabase,
		DBUser:            containerUser,
		DBPassword:        containerPassword,
		DBConnectionLimit: 5,
		LogLevel:          "info",
		LogFormat:         "text",
	}
	slog.Info("Database container started", slog.String("image", image), slog.String("host", host), slog.String("port", mapped.Port()))
	return dc, nil
}

// ConnectWithRetry connects to a freshly started server, which may accept
// TCP connections before it accepts logins.
func ConnectWithRetry(ctx context.Context, cfg *config.Config, attempts int) (*gorm.DB, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		db, err := database.Connect(cfg)
		if err == nil {
			return db, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}
	return nil, fmt.Errorf("database not ready after %d attempts: %w", attempts, lastErr)
}

// NewContainerDB starts the image named by imageEnv as dbType and returns a
// migrated connection. The test is skipped in short mode or when imageEnv
// is unset.
func NewContainerDB(t *testing.T, dbType, imageEnv string) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	image := os.Getenv(imageEnv)
	if image == "" {
		t.Skipf("%s not set", imageEnv)
	}

	ctx := context.Background()
	dc, err := StartDatabase(ctx, dbType, image)
	if err != nil {
		t.Fatalf("Failed to start database container: %v", err)
	}
	t.Cleanup(func() {
		if err := dc.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate database container: %v", err)
		}
	})

	db, err := ConnectWithRetry(ctx, dc.Config, 30)
	if err != nil {
		t.Fatalf("Failed to connect to database container: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate container database: %v", err)
	}
	return db
}
