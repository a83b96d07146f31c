package main

import (
	"sync"
	"time"

	"github.com/junle/database"
	"github.com/junle/database/seeder/seeds"
	"github.com/junle/metal/env"
	"github.com/junle/metal/kernel"
	"github.com/junle/pkg/cli"
	"github.com/junle/pkg/portal"
)

var environment *env.Environment

func init() {
	secrets, err := kernel.Ignite("./.env", portal.GetDefaultValidator())
	if err != nil {
		panic(err)
	}

	environment = secrets
}

func main() {
	cli.ClearScreen()

	dbConnection := kernel.MakeDbConnection(environment)
	logs := kernel.MakeLogs(environment)

	defer logs.Close()
	defer dbConnection.Close()

	// [1] --- Create the Seeder Runner.
	seeder := seeds.MakeSeeder(dbConnection, environment)

	// [2] --- Truncate the db.
	if err := seeder.TruncateDB(); err != nil {
		panic(err)
	} else {
		cli.Successln("db Truncated successfully ...")
		time.Sleep(2 * time.Second)
	}

	// [3] --- Seed the author first since every post hangs off it.
	author := seeder.SeedUsers()

	categoriesChan := make(chan []database.Category)
	tagsChan := make(chan []database.Tag)

	go func() {
		defer close(categoriesChan)

		cli.Warningln("Seeding categories ...")
		categoriesChan <- seeder.SeedCategories()
	}()

	go func() {
		defer close(tagsChan)

		cli.Magentaln("Seeding tags ...")
		tagsChan <- seeder.SeedTags()
	}()

	// [4] Use channels to concurrently seed categories and tags since posts depend on both.
	categories := <-categoriesChan
	tags := <-tagsChan

	posts := seeder.SeedPosts(author, categories, tags)

	// [5] Use a WaitGroup to run independent seeding tasks concurrently.
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		cli.Blueln("Seeding comments ...")
		seeder.SeedComments(posts...)
	}()

	go func() {
		defer wg.Done()

		cli.Cyanln("Seeding pages ...")
		seeder.SeedPages()
	}()

	wg.Wait()

	cli.Magentaln("db seeded as expected ....")
}
