package router

import (
	"github.com/Uzma-Jawed/read-n-quote-app/internal/application"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/container"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/infrastructure/jsonstore"
	handlers "github.com/Uzma-Jawed/read-n-quote-app/internal/interface/http"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	store := container.GetStore()
	logger := container.GetLogger()
	cfg := container.GetConfig()
	jwt := container.GetJWT()

	users := jsonstore.NewUserRepository(store)
	books := jsonstore.NewBookRepository(store)
	quotes := jsonstore.NewQuoteRepository(store)

	authSvc := application.NewAuthService(users, books, quotes, jwt, logger)
	bookSvc := application.NewBookService(books, logger)
	quoteSvc := application.NewQuoteService(quotes, books, logger)
	analyticsSvc := application.NewAnalyticsService(books, quotes, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure), jwt))
	r.Add(modules.NewBookModule(handlers.NewBookHandler(bookSvc, logger), jwt))
	r.Add(modules.NewQuoteModule(handlers.NewQuoteHandler(quoteSvc, logger), jwt))
	r.Add(modules.NewAnalyticsModule(handlers.NewAnalyticsHandler(analyticsSvc, logger), jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
