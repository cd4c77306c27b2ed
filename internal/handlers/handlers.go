package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/VorteXchange1987/kinea-1/internal/config"
	"github.com/VorteXchange1987/kinea-1/internal/middleware"
	"github.com/VorteXchange1987/kinea-1/internal/notify"
	"github.com/VorteXchange1987/kinea-1/internal/ratelimit"
	"github.com/VorteXchange1987/kinea-1/internal/repository"
	"github.com/VorteXchange1987/kinea-1/internal/service"
	"github.com/VorteXchange1987/kinea-1/internal/storage"
	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

type HandlerSet struct {
	log         zerolog.Logger
	cfg         *config.AppConfig
	authService *service.AuthService
	views       *service.ViewCounter
	telegram    *notify.Telegram
	limiter     *ratelimit.CommentLimiter
	store       *storage.ObjectStore
	db          *pgxpool.Pool
	cache       *redis.Client
	users       *repository.UserRepository
	series      *repository.SeriesRepository
	episodes    *repository.EpisodeRepository
	comments    *repository.CommentRepository
	favorites   *repository.FavoriteRepository
	ads         *repository.AdRepository
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	seriesRepo := repository.NewSeriesRepository(db)
	episodeRepo := repository.NewEpisodeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	adRepo := repository.NewAdRepository(db)

	telegram := notify.NewTelegram(cfg.Telegram, log)
	auth := service.NewAuthService(userRepo, telegram, cfg, log)
	views := service.NewViewCounter(cache, episodeRepo, log)
	limiter := ratelimit.NewCommentLimiter(cache, cfg.Limits.CommentBurst, cfg.Limits.CommentWindow, log)

	return HandlerSet{
		log:         log,
		cfg:         cfg,
		authService: auth,
		views:       views,
		telegram:    telegram,
		limiter:     limiter,
		store:       store,
		db:          db,
		cache:       cache,
		users:       userRepo,
		series:      seriesRepo,
		episodes:    episodeRepo,
		comments:    commentRepo,
		favorites:   favoriteRepo,
		ads:         adRepo,
	}
}

// AuthService exposes the auth service for startup tasks (super-admin
// bootstrap).
func (h HandlerSet) AuthService() *service.AuthService {
	return h.authService
}

// Views exposes the view counter for the flush scheduler.
func (h HandlerSet) Views() *service.ViewCounter {
	return h.views
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	authed := middleware.Auth(h.cfg.Security.JWTSecret, h.users)
	moderator := middleware.RequireRole(api.RoleModerator)
	admin := middleware.RequireRole(api.RoleAdmin)

	auth := router.Group("/auth")
	{
		auth.POST("/register", h.RegisterUser)
		auth.POST("/login", h.Login)
		auth.GET("/me", authed, h.Me)
	}

	users := router.Group("/users")
	{
		users.GET("/search", authed, admin, h.SearchUsers)
		users.POST("/:userId/ban", authed, admin, h.BanUser)
		users.POST("/:userId/unban", authed, admin, h.UnbanUser)
		users.PUT("/:userId/role", authed, admin, h.UpdateRole)

		me := users.Group("/me", authed)
		me.PUT("/profile-photo", h.UpdateProfilePhoto)
		me.PUT("/username", h.UpdateUsername)
		me.PUT("/email", h.UpdateEmail)
		me.PUT("/password", h.UpdatePassword)
	}

	series := router.Group("/series")
	{
		series.GET("", h.ListSeries)
		series.GET("/search", h.SearchSeries)
		series.GET("/:seriesId", h.GetSeries)
		series.GET("/:seriesId/seasons", h.ListSeasons)
		series.POST("", authed, moderator, h.CreateSeries)
		series.PUT("/:seriesId", authed, moderator, h.UpdateSeries)
		series.DELETE("/:seriesId", authed, admin, h.DeleteSeries)
	}

	seasons := router.Group("/seasons")
	{
		seasons.GET("/:seasonId/episodes", h.ListEpisodes)
		seasons.POST("", authed, moderator, h.CreateSeason)
		seasons.PUT("/:seasonId", authed, moderator, h.UpdateSeason)
	}

	episodes := router.Group("/episodes")
	{
		episodes.GET("/:episodeId", h.GetEpisode)
		episodes.GET("/:episodeId/comments", h.ListComments)
		episodes.POST("", authed, moderator, h.CreateEpisode)
		episodes.PUT("/:episodeId", authed, moderator, h.UpdateEpisode)
		episodes.DELETE("/:episodeId", authed, admin, h.DeleteEpisode)
	}

	comments := router.Group("/comments", authed)
	{
		comments.POST("", h.CreateComment)
		comments.POST("/:commentId/like", h.LikeComment)
		comments.POST("/:commentId/pin", admin, h.PinComment)
		comments.PUT("/:commentId", moderator, h.UpdateComment)
		comments.DELETE("/:commentId", h.DeleteComment)
	}

	favorites := router.Group("/favorites", authed)
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("/:seriesId", h.ToggleFavorite)
	}

	router.GET("/ads", h.GetAds)
	router.PUT("/ads", authed, admin, h.UpdateAds)

	router.GET("/stats", authed, admin, h.GetStats)

	router.POST("/media/upload", authed, h.UploadMedia)
}
