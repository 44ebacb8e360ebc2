package httpadapter

import (
	"net/http"

	"quizarena/internal/adapters/http/handlers"
	"quizarena/internal/adapters/http/middlewares"
	"quizarena/internal/adapters/websocket"
	"quizarena/internal/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "quizarena/docs"
)

// RouterDeps reúne os handlers e serviços que o router expõe.
type RouterDeps struct {
	Auth     *handlers.AuthHandler
	Quiz     *handlers.QuizHandler
	Question *handlers.QuestionHandler
	Game     *handlers.GameHandler
	Flow     *handlers.FlowHandler
	Report   *handlers.ReportHandler
	WS       *websocket.WebSocketHandler

	TokenService   ports.TokenService
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
}

// NewRouter configura as rotas e middlewares.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Middlewares globais
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Rota de Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Documentação
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	// WebSocket: token vai na query, validado pelo próprio handler
	if d.WS != nil {
		r.Get("/ws", d.WS.HandleWS)
	}

	auth := middlewares.AuthMiddleware(d.TokenService)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", d.Auth.Register)
		r.Post("/login", d.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/me", d.Auth.GetMe)
		})
	})

	r.Route("/quizzes", func(r chi.Router) {
		r.Use(auth)

		r.Post("/", d.Quiz.CreateQuiz)
		r.Get("/", d.Quiz.ListQuizzes)
		r.Get("/{id}", d.Quiz.GetQuiz)
		r.Put("/{id}", d.Quiz.UpdateQuiz)
		r.Delete("/{id}", d.Quiz.DeleteQuiz)
		r.Post("/{id}/publish", d.Quiz.PublishQuiz)

		r.Route("/{id}/questions", func(r chi.Router) {
			r.Post("/", d.Question.AddQuestion)
			r.Put("/order", d.Question.ReorderQuestions)
			r.Put("/{questionId}", d.Question.UpdateQuestion)
			r.Delete("/{questionId}", d.Question.RemoveQuestion)
		})
	})

	// Sessões e os nove eventos de jogo
	r.Route("/games", func(r chi.Router) {
		r.Use(auth)

		r.Post("/", d.Game.CreateGame)
		r.Route("/{code}", func(r chi.Router) {
			r.Get("/", d.Game.GetGame)
			r.Post("/join", d.Flow.Join)
			r.Post("/leave", d.Flow.Leave)
			r.Post("/start", d.Flow.Start)
			r.Post("/cancel", d.Flow.Cancel)
			r.Post("/next-player", d.Flow.NextPlayer)
			r.Post("/allow-robbing", d.Flow.AllowRobbing)

			r.Route("/questions/{questionId}", func(r chi.Router) {
				r.Post("/select", d.Flow.SelectQuestion)
				r.Post("/answer", d.Flow.Answer)
				r.Post("/rob", d.Flow.Rob)
			})
		})
	})

	r.Route("/reports", func(r chi.Router) {
		r.Use(auth)

		r.Get("/games", d.Report.ListGames)
		r.Get("/games/{id}", d.Report.GetGame)
		r.Get("/quizzes/{id}", d.Report.GetQuizStats)
	})

	return r
}
