package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates a new router with all routes configured
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (all routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes (no auth required)
		r.Get("/health", h.Health)

		// Protected routes (auth required)
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(h.apiKey))

			r.Get("/state", h.ExportState)

			r.Route("/areas", func(r chi.Router) {
				r.Get("/", h.ListAreas)
				r.Post("/", h.CreateArea)
				r.Patch("/{id}", h.UpdateArea)
				r.Delete("/{id}", h.DeleteArea)
				r.Get("/{id}/overview", h.GetAreaOverview)
			})

			r.Route("/inbox", func(r chi.Router) {
				r.Get("/", h.ListInbox)
				r.Post("/", h.CaptureInbox)
				r.Post("/clear-processed", h.ClearProcessedInbox)
				r.Post("/{id}/process", h.ProcessInbox)
				r.Delete("/{id}", h.DeleteInbox)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.ListProjects)
				r.Post("/", h.CreateProject)
				r.Patch("/{id}", h.UpdateProject)
				r.Delete("/{id}", h.DeleteProject)
				r.Get("/{id}/tasks", h.ListProjectTasks)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.ListTasks)
				r.Post("/", h.CreateTask)
				r.Patch("/{id}", h.UpdateTask)
				r.Delete("/{id}", h.DeleteTask)
				r.Post("/{id}/toggle", h.ToggleTask)
				r.Post("/{id}/schedule-today", h.ScheduleTaskToday)
				r.Post("/{id}/move-tomorrow", h.MoveTaskTomorrow)
				r.Get("/{id}/goal", h.GetTaskGoal)
			})

			r.Route("/deals", func(r chi.Router) {
				r.Get("/", h.ListDeals)
				r.Post("/", h.CreateDeal)
				r.Patch("/{id}", h.UpdateDeal)
				r.Delete("/{id}", h.DeleteDeal)
				r.Post("/{id}/stage", h.MoveDeal)
			})

			r.Route("/notes", func(r chi.Router) {
				r.Get("/", h.ListNotes)
				r.Post("/", h.CreateNote)
				r.Patch("/{id}", h.UpdateNote)
				r.Delete("/{id}", h.DeleteNote)
			})

			r.Route("/content", func(r chi.Router) {
				r.Get("/", h.ListContent)
				r.Post("/", h.CreateContent)
				r.Patch("/{id}", h.UpdateContent)
				r.Delete("/{id}", h.DeleteContent)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", h.ListTransactions)
				r.Post("/", h.CreateTransaction)
				r.Patch("/{id}", h.UpdateTransaction)
				r.Delete("/{id}", h.DeleteTransaction)
			})
			r.Get("/money/summary", h.GetMoneySummary)

			r.Route("/meal-plans", func(r chi.Router) {
				r.Get("/week", h.ListWeekMealPlans)
				r.Put("/", h.PutMealPlan)
				r.Patch("/{id}", h.UpdateMealPlan)
				r.Delete("/{id}", h.DeleteMealPlan)
			})

			r.Route("/shopping", func(r chi.Router) {
				r.Get("/", h.ListShopping)
				r.Post("/", h.CreateShoppingItem)
				r.Post("/clear-completed", h.ClearCompletedShopping)
				r.Patch("/{id}", h.UpdateShoppingItem)
				r.Post("/{id}/toggle", h.ToggleShoppingItem)
				r.Delete("/{id}", h.DeleteShoppingItem)
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/upcoming", h.ListUpcomingEvents)
				r.Post("/", h.CreateFamilyEvent)
				r.Patch("/{id}", h.UpdateFamilyEvent)
				r.Delete("/{id}", h.DeleteFamilyEvent)
			})

			r.Route("/routines", func(r chi.Router) {
				r.Get("/", h.ListRoutines)
				r.Post("/", h.CreateRoutine)
				r.Patch("/{id}", h.UpdateRoutine)
				r.Delete("/{id}", h.DeleteRoutine)
			})
			r.Get("/habits", h.ListHabitLogs)
			r.Post("/habits/toggle", h.ToggleHabit)

			r.Route("/goals", func(r chi.Router) {
				r.Get("/", h.ListGoals)
				r.Post("/", h.CreateGoal)
				r.Patch("/{id}", h.UpdateGoal)
				r.Delete("/{id}", h.DeleteGoal)
				r.Post("/{id}/metric", h.UpdateGoalMetric)
				r.Get("/{id}/progress", h.GetGoalProgress)
				r.Get("/{id}/heatmap", h.GetGoalHeatmap)
				r.Get("/{id}/activities", h.ListGoalActivities)
				r.Post("/{id}/activities", h.LogGoalActivity)
				r.Get("/{id}/links", h.GetGoalLinks)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", h.ListReviews)
				r.Get("/current", h.GetCurrentReview)
				r.Post("/", h.CreateReview)
				r.Patch("/{id}", h.UpdateReview)
			})

			r.Route("/checkins", func(r chi.Router) {
				r.Post("/morning", h.MorningCheckIn)
				r.Post("/evening", h.EveningReflection)
				r.Get("/{date}", h.GetCheckIn)
				r.Put("/{date}", h.PutCheckIn)
			})

			r.Get("/mits", h.GetMITs)
			r.Put("/mits", h.SetMITs)

			r.Put("/intents/today", h.PutTodayIntent)

			r.Route("/views", func(r chi.Router) {
				r.Get("/today", h.GetTodayView)
				r.Get("/inbox", h.GetInboxView)
				r.Get("/upcoming", h.GetUpcomingView)
				r.Get("/someday", h.GetSomedayView)
			})

			r.Route("/coach", func(r chi.Router) {
				r.Get("/orphans", h.GetOrphanTasks)
				r.Get("/ignored", h.GetIgnoredGoals)
			})
		})
	})

	return r
}
