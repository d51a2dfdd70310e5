package routes

import (
	"context"
	"errors"
	"log"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aguti1902/appfitness-backend/internal/config"
	"github.com/Aguti1902/appfitness-backend/internal/handlers"
	"github.com/Aguti1902/appfitness-backend/internal/localstore"
	"github.com/Aguti1902/appfitness-backend/internal/middleware"
	"github.com/Aguti1902/appfitness-backend/internal/planner"
	"github.com/Aguti1902/appfitness-backend/internal/repository"
	"github.com/Aguti1902/appfitness-backend/internal/services"
	chatws "github.com/Aguti1902/appfitness-backend/internal/websocket"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, store *localstore.Store) error {
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	provider, err := planner.NewGeminiProvider(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		if !errors.Is(err, planner.ErrNotConfigured) {
			return err
		}
		// No API key: the deterministic fallback carries all generation.
		log.Println("plan generation model not configured, using fallback generator")
		provider = nil
	}
	generator := planner.NewGenerator(providerOrNil(provider), cfg.GenerationTimeout)

	planService := services.NewPlanService(store, generator, profileRepo, profileRepo)
	chatService := services.NewChatService(planService, profileRepo, generator)
	goalService := services.NewGoalService(store, profileRepo, generator)

	authHandler := handlers.NewAuthHandler(db, userRepo, profileRepo, cfg.JWTSecret)
	onboardingHandler := handlers.NewOnboardingHandler(profileRepo)
	planHandler := handlers.NewPlanHandler(planService)
	goalHandler := handlers.NewGoalHandler(goalService)

	chatHub := chatws.NewHub()
	go chatHub.Run()
	chatHandler := handlers.NewChatHandler(chatService, chatHub, cfg.JWTSecret)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	users := authProtected.Group("/users")
	users.Post("/onboarding", onboardingHandler.CompleteOnboarding)

	plan := authProtected.Group("/plan")
	plan.Post("/generate", planHandler.Generate)
	plan.Get("", planHandler.Get)
	plan.Delete("", planHandler.Delete)
	plan.Post("/swap-days", planHandler.SwapDays)
	plan.Get("/wods/:sport", planHandler.GetWODs)
	plan.Put("/wods/:sport", planHandler.SetWOD)
	plan.Delete("/wods/:sport/:day", planHandler.ClearWOD)
	plan.Post("/shopping-list/toggle", planHandler.ToggleShoppingItem)
	plan.Post("/shopping-list/rebuild", planHandler.RebuildShoppingList)
	plan.Post("/recipe", planHandler.GenerateRecipe)
	plan.Get("/recommendation", planHandler.RecommendWorkout)

	goals := authProtected.Group("/goals")
	goals.Get("", goalHandler.List)
	goals.Post("", goalHandler.Create)
	goals.Put("/:id/progress", goalHandler.UpdateProgress)
	goals.Delete("/:id", goalHandler.Delete)

	chat := authProtected.Group("/chat")
	chat.Post("/message", chatHandler.SendMessage)

	ws := app.Group("/ws")
	ws.Use("/chat", chatHandler.WebSocketAuth)
	ws.Get("/chat", websocket.New(chatHandler.HandleWebSocket))

	return nil
}

// providerOrNil keeps a typed-nil *GeminiProvider from sneaking into
// the Provider interface.
func providerOrNil(p *planner.GeminiProvider) planner.Provider {
	if p == nil {
		return nil
	}
	return p
}
