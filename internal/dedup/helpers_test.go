package dedup

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vacantry/housing-backend/internal/pkg/logger"
	"github.com/vacantry/housing-backend/internal/types"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Postgres-only column defaults (uuid_generate_v4) do not translate to
// sqlite, so the test schema is created by hand and ids are set explicitly.
var testSchema = []string{
	`CREATE TABLE "owner" (
		"id" text PRIMARY KEY,
		"full_name" text NOT NULL,
		"raw_address" text,
		"birth_date" datetime,
		"administrator" text,
		"email" text,
		"phone" text,
		"kind" text,
		"kind_detail" text,
		"created_at" datetime,
		"updated_at" datetime
	)`,
	`CREATE TABLE "housing" (
		"id" text PRIMARY KEY,
		"geo_code" text NOT NULL,
		"raw_address" text,
		"vacancy_start_year" integer,
		"created_at" datetime,
		"updated_at" datetime
	)`,
	`CREATE TABLE "housing_owner" (
		"owner_id" text NOT NULL,
		"housing_geo_code" text NOT NULL,
		"housing_id" text NOT NULL,
		"rank" integer NOT NULL,
		"start_date" datetime,
		"end_date" datetime,
		"created_at" datetime,
		"updated_at" datetime,
		PRIMARY KEY ("owner_id", "housing_geo_code", "housing_id")
	)`,
	`CREATE TABLE "event" (
		"id" text PRIMARY KEY,
		"owner_id" text NOT NULL,
		"type" text NOT NULL,
		"payload" text,
		"created_by" text,
		"created_at" datetime
	)`,
	`CREATE TABLE "old_event" (
		"id" text PRIMARY KEY,
		"owner_id" text NOT NULL,
		"housing_id" text,
		"content" text,
		"created_at" datetime
	)`,
	`CREATE TABLE "owner_note" (
		"id" text PRIMARY KEY,
		"owner_id" text NOT NULL,
		"content" text NOT NULL,
		"created_by" text,
		"created_at" datetime,
		"updated_at" datetime
	)`,
	`CREATE TABLE "owner_merge" (
		"id" text PRIMARY KEY,
		"kept_owner_id" text NOT NULL,
		"removed_owner_id" text NOT NULL,
		"removed_full_name" text NOT NULL,
		"score" real NOT NULL,
		"merged_by" text NOT NULL DEFAULT 'system',
		"created_at" datetime
	)`,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range testSchema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create test schema: %v", err)
		}
	}
	return db
}

func seedOwner(t *testing.T, db *gorm.DB, owner *types.Owner) *types.Owner {
	t.Helper()
	if owner.ID == uuid.Nil {
		owner.ID = uuid.New()
	}
	if err := db.Create(owner).Error; err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	return owner
}

func seedLink(t *testing.T, db *gorm.DB, link *types.HousingOwner) *types.HousingOwner {
	t.Helper()
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("seed housing link: %v", err)
	}
	return link
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}
