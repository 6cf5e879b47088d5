package v1

import (
	"log"

	"intern-match/internal/config"
	"intern-match/internal/database"
	"intern-match/internal/delivery/http/handler"
	"intern-match/internal/delivery/http/middleware"
	"intern-match/internal/domain/ranking"
	"intern-match/internal/domain/user"
	"intern-match/internal/infrastructure/ai"
	"intern-match/internal/infrastructure/cache"
	"intern-match/internal/pkg/jwt"
	"intern-match/internal/repository"
	"intern-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	AI       ai.Client
	Notifier usecase.JobNotifier
	Logger   *log.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(d.DB)
	resumeRepo := repository.NewPostgresResumeRepository(d.DB)
	jobRepo := repository.NewPostgresJobRepository(d.DB)
	companyRepo := repository.NewPostgresCompanyRepository(d.DB)

	var recCache usecase.RecommendationCache
	if d.Cache != nil {
		recCache = d.Cache
	}

	vectorRanker := ranking.NewVectorRanker(ranking.NewJitterSource())
	keywordRanker := ranking.NewKeywordRanker(ranking.DefaultVocabulary(), ranking.NewJitterSource())

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, d.AI, recCache, d.Logger)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, d.AI, recCache, d.Notifier, d.Logger)
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	recommendationUC := usecase.NewRecommendationUsecase(
		resumeRepo, jobRepo, companyRepo,
		vectorRanker, keywordRanker,
		recCache, d.Logger,
	)

	authHandler := handler.NewAuthHandler(authUC)
	resumeHandler := handler.NewResumeHandler(resumeUC)
	jobHandler := handler.NewJobHandler(jobUC)
	companyHandler := handler.NewCompanyHandler(companyUC)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	resumeHandler.RegisterRoutes(protected)

	jobsGroup := protected.Group("/jobs")
	recommendationHandler.RegisterRoutes(jobsGroup)
	jobHandler.RegisterRoutes(jobsGroup.Group("", middleware.RequireRole(string(user.RoleCompany))))

	companiesGroup := protected.Group("/companies", middleware.RequireRole(string(user.RoleCompany)))
	companyHandler.RegisterRoutes(companiesGroup)
}
