// Package testutil provides shared helpers for package tests: an isolated
// in-memory sqlite database per test and seed helpers.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/wmsConsultant/backend/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var dbSeq int64

// DB opens a fresh in-memory sqlite database with all tables migrated.
// Each call gets its own database; nothing leaks between tests.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Client{},
		&model.Project{},
		&model.Question{},
		&model.ResearchRecord{},
		&model.WMSProcess{},
	); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return db
}

func SeedClient(tb testing.TB, db *gorm.DB, name, industry string) *model.Client {
	tb.Helper()
	c := &model.Client{Name: name, Industry: industry}
	if err := db.Create(c).Error; err != nil {
		tb.Fatalf("seed client: %v", err)
	}
	return c
}

func SeedProject(tb testing.TB, db *gorm.DB, clientID uint, name string) *model.Project {
	tb.Helper()
	p := &model.Project{ClientID: clientID, Name: name, Status: model.ProjectStatusActive}
	if err := db.Create(p).Error; err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	return p
}

func SeedQuestion(tb testing.TB, db *gorm.DB, projectID uint, text string) *model.Question {
	tb.Helper()
	q := &model.Question{ProjectID: projectID, Category: "receiving", Text: text, Priority: model.PriorityMedium}
	if err := db.Create(q).Error; err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return q
}
