package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/vacantry/housing-backend/internal/db"
	"github.com/vacantry/housing-backend/internal/dedup"
	"github.com/vacantry/housing-backend/internal/pkg/logger"
	"github.com/vacantry/housing-backend/internal/repos"
	"github.com/vacantry/housing-backend/internal/types"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// An interrupt stops owner intake; the pipeline drains and the report is
	// still flushed before exit.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Config
	cfg := dedup.ConfigFromEnv(log)
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid dedup config", "error", err)
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos...")
	ownerRepo := repos.NewOwnerRepo(thePG, log)
	housingOwnerRepo := repos.NewHousingOwnerRepo(thePG, log)
	eventRepo := repos.NewEventRepo(thePG, log)
	ownerNoteRepo := repos.NewOwnerNoteRepo(thePG, log)
	ownerMergeRepo := repos.NewOwnerMergeRepo(thePG, log)

	// Engine
	log.Info("Setting up dedup engine...")
	run := dedup.NewRun()
	classifier, err := dedup.NewClassifier(cfg)
	if err != nil {
		log.Fatal("Classifier init failed", "error", err)
	}
	evaluator := dedup.NewEvaluator(ownerRepo, classifier, run.Cache(), log)
	merger := dedup.NewMerger(thePG, ownerRepo, housingOwnerRepo, eventRepo, ownerNoteRepo, ownerMergeRepo, classifier, run.Report(), log)
	recorder := dedup.NewRecorder(classifier, run.Report(), log)
	engine := dedup.NewEngine(evaluator, merger, recorder, cfg, log)

	// Owner stream, paged out of the store in id order.
	owners := make(chan *types.Owner, cfg.BufferSize)
	go func() {
		defer close(owners)
		afterID := uuid.Nil
		for {
			batch, err := ownerRepo.ListBatch(ctx, nil, afterID, cfg.BatchSize)
			if err != nil {
				log.Error("Owner batch load failed, stopping intake", "after_id", afterID, "error", err)
				return
			}
			if len(batch) == 0 {
				return
			}
			for _, owner := range batch {
				select {
				case owners <- owner:
				case <-ctx.Done():
					return
				}
			}
			afterID = batch[len(batch)-1].ID
		}
	}()

	log.Info("Starting owner deduplication run",
		"match_threshold", cfg.MatchThreshold,
		"review_threshold", cfg.ReviewThreshold,
	)
	report, err := engine.Process(ctx, owners)
	if err != nil {
		log.Error("Deduplication run aborted", "error", err)
	}
	log.Info("Deduplication run finished",
		"overall", report.Overall,
		"match", report.Match,
		"non_match", report.NonMatch,
		"need_review", report.NeedReview,
		"removed_owners", report.RemovedOwners,
		"removed_housing_links", report.RemovedLinks,
		"mean_score", report.Mean,
	)
	if err != nil {
		os.Exit(1)
	}
}
