// Package history reads the user's shell history and keeps llm-exec's own
// journal of suggested commands.
//
// Shell history files are only ever read. Everything llm-exec records about
// its own runs goes to the journal database instead.
package history

import (
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Journal struct {
	db *gorm.DB
}

// Entry is one suggestion made by the model and what became of it.
type Entry struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Prompt    string
	Command   string
	Model     string
	Directory string
	Executed  bool
	ExitCode  sql.NullInt32
}

// OpenJournal opens the journal database at dbFilePath, creating the file and
// schema on first use. ":memory:" opens a throwaway in-memory journal.
func OpenJournal(dbFilePath string) (*Journal, error) {
	db, err := gorm.Open(sqlite.Open(dbFilePath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	// One connection keeps ":memory:" databases from splitting per connection.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access journal database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal schema: %w", err)
	}

	return &Journal{
		db: db,
	}, nil
}

// Record stores a new suggestion that has not been executed yet.
func (journal *Journal) Record(prompt, command, model, directory string) (*Entry, error) {
	entry := Entry{
		Prompt:    prompt,
		Command:   command,
		Model:     model,
		Directory: directory,
	}

	result := journal.db.Create(&entry)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entry, nil
}

// Finish marks entry as executed with the given exit code.
func (journal *Journal) Finish(entry *Entry, exitCode int) (*Entry, error) {
	entry.Executed = true
	entry.ExitCode = sql.NullInt32{Int32: int32(exitCode), Valid: true}

	result := journal.db.Save(entry)
	if result.Error != nil {
		return nil, result.Error
	}

	return entry, nil
}

// Recent returns up to limit entries, oldest first.
func (journal *Journal) Recent(limit int) ([]Entry, error) {
	var entries []Entry
	result := journal.db.Order("created_at desc").Order("id desc").Limit(limit).Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	slices.Reverse(entries)
	return entries, nil
}

func (journal *Journal) Close() error {
	sqlDB, err := journal.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
