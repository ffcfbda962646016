package repositories

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// a single connection keeps every statement on one SQLite handle
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return &DbContext{DB: db}, nil
}

var schema = []struct {
	table string
	ddl   string
}{
	{"candidates", `CREATE TABLE IF NOT EXISTS candidates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		full_name TEXT NOT NULL,
		birth_date TEXT,
		skills TEXT,
		experience INTEGER,
		phone TEXT,
		email TEXT,
		reg_date TEXT
	)`},
	{"vacancies", `CREATE TABLE IF NOT EXISTS vacancies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		position TEXT NOT NULL,
		company TEXT,
		salary INTEGER,
		requirements TEXT,
		description TEXT,
		pub_date TEXT
	)`},
	{"applications", `CREATE TABLE IF NOT EXISTS applications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		candidate_id INTEGER,
		vacancy_id INTEGER,
		status TEXT DEFAULT 'Under review',
		app_date TEXT,
		FOREIGN KEY (candidate_id) REFERENCES candidates (id),
		FOREIGN KEY (vacancy_id) REFERENCES vacancies (id)
	)`},
}

// Migrate creates the tables that are missing. It is safe to run on every start.
func (c *DbContext) Migrate() error {
	for _, table := range schema {
		if err := c.DB.Exec(table.ddl).Error; err != nil {
			return fmt.Errorf("failed to create %s table: %w", table.table, err)
		}
	}
	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
