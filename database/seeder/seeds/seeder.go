package seeds

import (
	"github.com/junle/database"
	"github.com/junle/metal/env"
	"github.com/junle/pkg/cli"
)

// Seeder drives the whole fixture set. The Seed* methods panic on failure
// since a half-seeded database is useless for local work anyway.
type Seeder struct {
	dbConn *database.Connection
	env    *env.Environment
}

func MakeSeeder(dbConn *database.Connection, env *env.Environment) *Seeder {
	return &Seeder{
		dbConn: dbConn,
		env:    env,
	}
}

func (s Seeder) TruncateDB() error {
	return database.NewTruncate(s.dbConn, s.env).Execute()
}

func (s Seeder) SeedUsers() database.User {
	author, err := NewUsersSeed(s.dbConn).Create(database.UsersAttrs{
		Username:    "gus",
		DisplayName: "Gus",
	})

	if err != nil {
		panic(err)
	}

	cli.Successln("users seeded ...")

	return author
}

func (s Seeder) SeedCategories() []database.Category {
	categories, err := MakeCategoriesSeed(s.dbConn).Create()
	if err != nil {
		panic(err)
	}

	return categories
}

func (s Seeder) SeedTags() []database.Tag {
	tags, err := NewTagsSeed(s.dbConn).Create()
	if err != nil {
		panic(err)
	}

	return tags
}

func (s Seeder) SeedPosts(author database.User, categories []database.Category, tags []database.Tag) []database.Post {
	posts, err := NewPostsSeed(s.dbConn).CreatePosts(author, categories, tags)
	if err != nil {
		panic(err)
	}

	cli.Successln("posts seeded ...")

	return posts
}

func (s Seeder) SeedComments(posts ...database.Post) {
	if len(posts) == 0 {
		return
	}

	if _, err := NewCommentsSeed(s.dbConn).Create(posts...); err != nil {
		panic(err)
	}
}

func (s Seeder) SeedPages() {
	if _, err := NewPagesSeed(s.dbConn).Create(); err != nil {
		panic(err)
	}
}
