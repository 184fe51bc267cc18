package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/Uzma-Jawed/read-n-quote-app/config"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/application"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/infrastructure/jsonstore"
	"github.com/Uzma-Jawed/read-n-quote-app/pkg/helpers"
)

// Seeds a demo user with a small shelf of books and quotes so the API has
// something to show on a fresh checkout.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	store, err := jsonstore.New(cfg.DataDir, logger)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}

	users := jsonstore.NewUserRepository(store)
	books := jsonstore.NewBookRepository(store)
	quotes := jsonstore.NewQuoteRepository(store)
	jwt := helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)

	authSvc := application.NewAuthService(users, books, quotes, jwt, logger)
	bookSvc := application.NewBookService(books, logger)
	quoteSvc := application.NewQuoteService(quotes, books, logger)

	username, password := "demo", "password123"
	if err := authSvc.Register(username, password); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: username=%s password=%s\n", username, password)

	shelf := []application.BookInput{
		{Title: "The Pragmatic Programmer", Author: "Andrew Hunt", Year: "1999",
			Genres: []string{"Programming", "Career"}, Status: "Completed", Rating: 5,
			Notes: "Worth a re-read every few years."},
		{Title: "Dune", Author: "Frank Herbert", Year: "1965",
			Genres: []string{"Science Fiction"}, Status: "Currently Reading", Rating: 4},
		{Title: "Children of Dune", Author: "Frank Herbert", Year: "1976",
			Genres: []string{"Science Fiction"}, Status: "Want to Read", Rating: 3},
	}
	ids := make([]string, 0, len(shelf))
	for _, in := range shelf {
		id, err := bookSvc.Add(username, in)
		if err != nil {
			log.Fatalf("failed to seed book %q: %v", in.Title, err)
		}
		ids = append(ids, id)
	}
	fmt.Printf("seeded %d books\n", len(ids))

	sayings := []application.QuoteInput{
		{Text: "Don't live with broken windows.", BookID: ids[0], PageNumber: "7", Tags: []string{"craft"}},
		{Text: "Fear is the mind-killer.", BookID: ids[1], Tags: []string{"litany"}},
	}
	for _, in := range sayings {
		if _, err := quoteSvc.Add(username, in); err != nil {
			log.Fatalf("failed to seed quote: %v", err)
		}
	}
	fmt.Printf("seeded %d quotes into %s\n", len(sayings), cfg.DataDir)
}
