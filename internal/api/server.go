package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/camlisting/camlisting/docs"
	v1 "github.com/camlisting/camlisting/internal/api/handler/v1"
	"github.com/camlisting/camlisting/internal/api/middleware"
	"github.com/camlisting/camlisting/internal/config"
	"github.com/camlisting/camlisting/internal/repository"
	"github.com/camlisting/camlisting/internal/repository/dao"
	"github.com/camlisting/camlisting/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	campHandler := s.initCampHandler(db)
	regionHandler := s.initRegionHandler(db)
	lookupHandler := s.initLookupHandler(db)
	userHandler := s.initUserHandler(db)
	pageHandler := s.initPageHandler(db)
	inquiryHandler := s.initInquiryHandler(db)
	reviewHandler := s.initReviewHandler(db)
	s.MountHandlers(authHandler, campHandler, regionHandler, lookupHandler, userHandler, pageHandler, inquiryHandler, reviewHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initCampHandler(db *gorm.DB) *v1.CampHandler {
	campDAO := dao.NewCampDAO(db)
	repo := repository.NewCampRepository(campDAO)
	regionRepo := repository.NewRegionRepository(dao.NewRegionDAO(db))
	lookupRepo := repository.NewLookupRepository(dao.NewLookupDAO(db))
	svc := service.NewCampService(repo, regionRepo, lookupRepo)
	handler := v1.NewCampHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initRegionHandler(db *gorm.DB) *v1.RegionHandler {
	regionDAO := dao.NewRegionDAO(db)
	repo := repository.NewRegionRepository(regionDAO)
	svc := service.NewRegionService(repo)
	handler := v1.NewRegionHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initLookupHandler(db *gorm.DB) *v1.LookupHandler {
	lookupDAO := dao.NewLookupDAO(db)
	repo := repository.NewLookupRepository(lookupDAO)
	svc := service.NewLookupService(repo)
	handler := v1.NewLookupHandler(svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initPageHandler(db *gorm.DB) *v1.PageHandler {
	pageDAO := dao.NewPageDAO(db)
	repo := repository.NewPageRepository(pageDAO)
	svc := service.NewPageService(repo)
	handler := v1.NewPageHandler(svc)

	return handler
}

func (s *Server) initInquiryHandler(db *gorm.DB) *v1.InquiryHandler {
	inquiryDAO := dao.NewInquiryDAO(db)
	repo := repository.NewInquiryRepository(inquiryDAO)
	campRepo := repository.NewCampRepository(dao.NewCampDAO(db))
	svc := service.NewInquiryService(repo, campRepo)
	handler := v1.NewInquiryHandler(svc)

	return handler
}

func (s *Server) initReviewHandler(db *gorm.DB) *v1.ReviewHandler {
	reviewDAO := dao.NewReviewDAO(db)
	repo := repository.NewReviewRepository(reviewDAO)
	campRepo := repository.NewCampRepository(dao.NewCampDAO(db))
	svc := service.NewReviewService(repo, campRepo)
	handler := v1.NewReviewHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.CollectMetrics())
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	campHandler *v1.CampHandler,
	regionHandler *v1.RegionHandler,
	lookupHandler *v1.LookupHandler,
	userHandler *v1.UserHandler,
	pageHandler *v1.PageHandler,
	inquiryHandler *v1.InquiryHandler,
	reviewHandler *v1.ReviewHandler,
) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/camps", campHandler.HandleListCamps)
		public.GET("/camps/featured", campHandler.HandleGetFeaturedCamps)
		public.GET("/camps/:slug", campHandler.HandleGetCamp)
		public.GET("/camps/:slug/related", campHandler.HandleGetRelatedCamps)

		public.GET("/regions", regionHandler.HandleGetRegionTree)
		public.GET("/regions/:slug", regionHandler.HandleGetRegion)
		public.GET("/camp-types", lookupHandler.HandleListCampTypes)
		public.GET("/camp-types/:slug", lookupHandler.HandleGetCampType)
		public.GET("/categories", lookupHandler.HandleListCategories)
		public.GET("/pages/:slug", pageHandler.HandleGetPage)

		public.POST("/camps/:slug/inquiries", authenticator.VerifyJWTOptional(), inquiryHandler.HandleSubmitInquiry)
		public.POST("/camps/:slug/reviews", authenticator.VerifyJWT(), reviewHandler.HandleSubmitReview)
	}

	admin := s.Router.Group("/api/admin", authenticator.VerifyJWT(), middleware.RequireAdmin())
	{
		admin.GET("/camps", campHandler.HandleAdminListCamps)
		admin.POST("/camps", campHandler.HandleCreateCamp)
		admin.GET("/camps/:campID", campHandler.HandleAdminGetCamp)
		admin.PUT("/camps/:campID", campHandler.HandleUpdateCamp)
		admin.DELETE("/camps/:campID", campHandler.HandleDeleteCamp)
		admin.PUT("/camps/:campID/sessions", campHandler.HandleReplaceSessions)
		admin.PUT("/camps/:campID/gallery", campHandler.HandleReplaceGallery)
		admin.PUT("/camps/:campID/activities", campHandler.HandleReplaceActivities)
		admin.PUT("/camps/:campID/facilities", campHandler.HandleReplaceFacilities)
		admin.PUT("/camps/:campID/highlights", campHandler.HandleReplaceHighlights)
		admin.PUT("/camps/:campID/faqs", campHandler.HandleReplaceFAQs)
		admin.PUT("/camps/:campID/schedule", campHandler.HandleReplaceSchedule)

		admin.POST("/regions", regionHandler.HandleCreateRegion)
		admin.PUT("/regions/:regionID", regionHandler.HandleUpdateRegion)
		admin.DELETE("/regions/:regionID", regionHandler.HandleDeleteRegion)

		admin.POST("/camp-types", lookupHandler.HandleCreateCampType)
		admin.PUT("/camp-types/:typeID", lookupHandler.HandleUpdateCampType)
		admin.DELETE("/camp-types/:typeID", lookupHandler.HandleDeleteCampType)
		admin.POST("/categories", lookupHandler.HandleCreateCategory)
		admin.PUT("/categories/:categoryID", lookupHandler.HandleUpdateCategory)
		admin.DELETE("/categories/:categoryID", lookupHandler.HandleDeleteCategory)

		admin.GET("/users", userHandler.HandleListUsers)
		admin.POST("/users", userHandler.HandleCreateUser)
		admin.GET("/users/:userID", userHandler.HandleGetUser)
		admin.PUT("/users/:userID", userHandler.HandleUpdateUser)
		admin.DELETE("/users/:userID", userHandler.HandleDeleteUser)

		admin.GET("/pages", pageHandler.HandleListPages)
		admin.POST("/pages", pageHandler.HandleCreatePage)
		admin.PUT("/pages/:pageID", pageHandler.HandleUpdatePage)
		admin.DELETE("/pages/:pageID", pageHandler.HandleDeletePage)

		admin.GET("/inquiries", inquiryHandler.HandleListInquiries)
		admin.PUT("/inquiries/:inquiryID/status", inquiryHandler.HandleUpdateInquiryStatus)

		admin.GET("/reviews", reviewHandler.HandleListReviews)
		admin.PUT("/reviews/:reviewID/moderate", reviewHandler.HandleModerateReview)
		admin.DELETE("/reviews/:reviewID", reviewHandler.HandleDeleteReview)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", middleware.MetricsHandler())

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "CamListing API"
	docs.SwaggerInfo.Description = "Camp directory with a public browsing API and an admin back office."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
