package handlertests

import (
	"context"
	"os/exec"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/junle/database"
	"github.com/junle/database/repository"
	"github.com/junle/metal/env"
)

// MakeTestDB opens an in-memory SQLite database, runs migrations, and seeds
// a default author. It returns the connection and the created user.
func MakeTestDB(t *testing.T) (*database.Connection, database.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	// An in-memory sqlite database lives inside its connection; a second
	// pooled connection would see a different, empty database.
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	conn := database.NewConnectionFromGorm(db)

	if err := conn.Migrate(); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	return conn, seedAuthor(t, conn)
}

// MakePostgresTestDB starts a PostgreSQL test container, runs migrations, and
// seeds a default author. Tests that exercise engine-specific behaviour use
// it; everything else sticks to the SQLite helper.
func MakePostgresTestDB(t *testing.T) (*database.Connection, database.User) {
	t.Helper()

	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed")
	}

	ctx := context.Background()
	pg, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("secret"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("container run err: %v", err)
	}
	t.Cleanup(func() { pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	if err != nil {
		t.Fatalf("host err: %v", err)
	}
	port, err := pg.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port err: %v", err)
	}

	e := &env.Environment{
		DB: env.DBEnvironment{
			UserName:     "test",
			UserPassword: "secret",
			DatabaseName: "testdb",
			Port:         port.Int(),
			Host:         host,
			DriverName:   database.DriverName,
			SSLMode:      "disable",
			TimeZone:     "UTC",
		},
	}

	conn, err := database.MakeConnection(e)
	if err != nil {
		t.Fatalf("make connection: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := conn.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return conn, seedAuthor(t, conn)
}

func seedAuthor(t *testing.T, conn *database.Connection) database.User {
	t.Helper()

	author, err := repository.Users{DB: conn}.Create(database.UsersAttrs{
		Username:    "author",
		DisplayName: "Author",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	return *author
}
