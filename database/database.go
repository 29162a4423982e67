package database

import (
	"movies-api/internal/app/logging"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// schema is applied with plain DDL rather than AutoMigrate: the movie
// repository owns its SQL, so the tables are declared in the same terms.
// The unique index on slug is the authoritative guard against two writers
// racing the validator's uniqueness check.
const schema = `
CREATE TABLE IF NOT EXISTS movies (
	id uuid PRIMARY KEY,
	title text NOT NULL,
	slug text NOT NULL,
	release_year integer NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_movies_slug ON movies (slug);

CREATE TABLE IF NOT EXISTS genres (
	movie_id uuid NOT NULL REFERENCES movies (id),
	name text NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_genres_movie_id ON genres (movie_id);
`

func InitDB(dsn string) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logging.L.Fatal("Failed to connect to database", "err", err)
	}

	DB = db

	if err := DB.Exec(schema).Error; err != nil {
		logging.L.Fatal("Failed to migrate schema", "err", err)
	}

	logging.L.Info("Connected and migrated successfully")
}
