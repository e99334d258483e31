package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stemsi/roster/internal/config"
	"github.com/stemsi/roster/internal/handler"
	"github.com/stemsi/roster/internal/logger"
	"github.com/stemsi/roster/internal/model"
	"github.com/stemsi/roster/internal/seed"
	"github.com/stemsi/roster/internal/service"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat).
		With().
		Str("run_id", uuid.NewString()).
		Logger()
	log.Info().
		Str("app", cfg.AppName).
		Str("log_level", cfg.LogLevel).
		Msg("Starting roster demo")

	// ─── Build Roster ──────────────────────────────────────────────────
	group, err := seed.BuildGroup("demo", seed.DefaultRoster())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build seed roster")
	}

	// ─── Initialize Services ──────────────────────────────────────────
	studyGroupService := service.NewStudyGroupService(log)
	streamService := service.NewStreamService(log)
	controller := handler.NewController(studyGroupService)

	// ─── Sort Students ─────────────────────────────────────────────────
	out := os.Stdout

	fmt.Fprintln(out, "Before sorting:")
	printGroup(out, group)

	controller.SortStudentsByID(group)
	fmt.Fprintln(out, "After sorting by ID:")
	printGroup(out, group)

	controller.SortStudentsByFullName(group)
	fmt.Fprintln(out, "After sorting by Full Name:")
	printGroup(out, group)

	// ─── Sort Streams ──────────────────────────────────────────────────
	streams := demoStreams(group)
	streamService.SortStreams(streams)
	for _, s := range streams {
		log.Info().Str("stream", s.Name()).Int("groups", s.GroupCount()).Msg("Stream")
	}

	log.Info().Msg("Demo complete")
}

func printGroup(w io.Writer, group *model.StudyGroup) {
	for s := range group.All() {
		fmt.Fprintln(w, s)
	}
}

// demoStreams builds three streams of decreasing size that share group.
func demoStreams(group *model.StudyGroup) []*model.Stream {
	large := model.NewStream("large")
	small := model.NewStream("small")
	medium := model.NewStream("medium")

	for range 3 {
		large.AddGroup(group)
	}
	small.AddGroup(group)
	medium.AddGroup(group)
	medium.AddGroup(model.NewStudyGroup("empty"))

	return []*model.Stream{large, small, medium}
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
