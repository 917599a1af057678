package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/parisxmas/qanda/internal/assets"
	"github.com/parisxmas/qanda/internal/config"
	"github.com/parisxmas/qanda/internal/export"
	"github.com/parisxmas/qanda/internal/gelf"
	"github.com/parisxmas/qanda/internal/handler"
	"github.com/parisxmas/qanda/internal/models"
	"github.com/parisxmas/qanda/internal/questions"
	"github.com/parisxmas/qanda/internal/repository"
	"github.com/parisxmas/qanda/internal/router"
	"github.com/parisxmas/qanda/internal/service"
)

func main() {
	exportPath := flag.String("export", "", "Write all stored answers to this .xlsx file and exit")
	flag.Parse()

	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr, "qanda")
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	qs, err := loadQuestions(cfg.QuestionsPath)
	if err != nil {
		log.Fatalf("Failed to load questions: %v", err)
	}
	page, err := loadPage(cfg.IndexPath)
	if err != nil {
		log.Fatalf("Failed to load page: %v", err)
	}

	answersPath := repository.ResolveAnswersPath(repository.ResolveOptions{AnswersPath: cfg.AnswersPath})
	answerRepo := repository.NewAnswerRepo(answersPath)
	log.Printf("Answers store: %s", answerRepo.Path())
	surveySvc := service.NewSurveyService(qs, answerRepo)

	if *exportPath != "" {
		if err := exportAnswers(*exportPath, qs, answerRepo.Entries()); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		log.Printf("Exported answers to %s", *exportPath)
		return
	}

	r := router.New(
		handler.NewQuestionHandler(surveySvc),
		handler.NewAnswerHandler(surveySvc, int64(cfg.MaxBodyBytes)),
		handler.NewPageHandler(page),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("qanda server listening on http://localhost:%d (%d questions)", cfg.Port, len(qs))
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func loadQuestions(path string) ([]models.Question, error) {
	if path == "" {
		return questions.Default()
	}
	return questions.Load(path)
}

func loadPage(path string) ([]byte, error) {
	if path == "" {
		return assets.IndexHTML, nil
	}
	return os.ReadFile(path)
}

func exportAnswers(path string, qs []models.Question, entries []models.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteXLSX(f, qs, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
