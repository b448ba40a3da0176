package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"policy-panic/internal/app"
	"policy-panic/internal/config"
	"policy-panic/internal/game"
	"policy-panic/internal/infra/memory"
	pgstore "policy-panic/internal/infra/postgres"
	redisstore "policy-panic/internal/infra/redis"
	"policy-panic/internal/questions"
	transport "policy-panic/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the game server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var scores app.ScoreStore = memory.NewScoreStore()
	if pool != nil {
		scores = pgstore.NewScoreStore(pool)
	}

	var stats app.StatsStore = memory.NewStatsStore()
	if redisClient != nil {
		stats = redisstore.NewStatsStore(redisClient)
	}

	source := buildQuestionSource(cfg, redisClient)
	gameCfg := buildGameConfig(cfg)

	service := app.NewGameService(scores, stats, app.Config{
		MaxScore:       gameCfg.Score.MaxTotal(gameCfg.Questions, gameCfg.RoundDuration.Seconds()),
		RestrictDomain: cfg.Submission.RestrictDomain,
		PublicLimit:    cfg.Submission.PublicLimit,
		AdminLimit:     cfg.Submission.AdminLimit,
	})

	auth := transport.NewAdminAuth(
		os.Getenv("ADMIN_PIN"),
		os.Getenv("ADMIN_JWT_SECRET"),
		config.Duration(cfg.Admin.TokenTTL, 8*time.Hour),
	)
	apiHandler := transport.NewAPIHandler(service, source, auth, gameCfg.Questions)
	wsHandler := transport.NewWSHandler(service, source, gameCfg)

	mux := http.NewServeMux()
	apiHandler.Register(mux)
	mux.HandleFunc("/ws/game", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting policy-panic on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// buildQuestionSource assembles the question pipeline: AI generator with bank
// fallback, wrapped in a cache so concurrent sessions share one generation.
func buildQuestionSource(cfg config.Config, redisClient *redis.Client) game.Source {
	bank := questions.NewBank(nil)

	var source questions.Source = bank
	if os.Getenv("OPENAI_API_KEY") != "" {
		generator := questions.NewGenerator(&questions.GeneratorConfig{
			BaseURL: cfg.Generator.BaseURL,
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   cfg.Generator.Model,
			Timeout: config.Duration(cfg.Generator.Timeout, 25*time.Second),
		})
		source = questions.NewFallback(generator, bank)
	} else {
		log.Println("OPENAI_API_KEY not set, serving bank questions only")
	}

	ttl := config.Duration(cfg.Generator.CacheTTL, 2*time.Minute)
	if redisClient != nil {
		return redisstore.NewQuestionCache(redisClient, source, ttl)
	}
	return memory.NewQuestionCache(source, ttl)
}

func buildGameConfig(cfg config.Config) game.Config {
	gameCfg := game.DefaultConfig()
	gameCfg.Questions = config.IntOr(cfg.Game.Questions, gameCfg.Questions)
	gameCfg.RoundDuration = config.Duration(cfg.Game.RoundTime, gameCfg.RoundDuration)
	gameCfg.TickInterval = config.Duration(cfg.Game.TickInterval, gameCfg.TickInterval)
	gameCfg.FeedbackDelay = config.Duration(cfg.Game.FeedbackDelay, gameCfg.FeedbackDelay)
	gameCfg.Score.BasePoints = config.IntOr(cfg.Score.BasePoints, gameCfg.Score.BasePoints)
	if cfg.Score.TimeMultiplier != 0 {
		gameCfg.Score.TimeMultiplier = cfg.Score.TimeMultiplier
	}
	gameCfg.Score.StreakBonus = config.IntOr(cfg.Score.StreakBonus, gameCfg.Score.StreakBonus)
	return gameCfg
}
