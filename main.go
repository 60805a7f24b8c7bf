package main

import (
	"context"
	"log"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/frogstagram/frogstagram/internal/api/handlers"
	"github.com/frogstagram/frogstagram/internal/auth"
	"github.com/frogstagram/frogstagram/internal/blobstore"
	"github.com/frogstagram/frogstagram/internal/config"
	"github.com/frogstagram/frogstagram/internal/enrich"
	"github.com/frogstagram/frogstagram/internal/middleware"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		),
	)
	if err != nil {
		log.Fatalln("Failed to load AWS configuration:", err)
	}

	store := blobstore.NewS3Store(s3.NewFromConfig(awsCfg), cfg.Bucket)
	authService := auth.NewService(cognito.NewFromConfig(awsCfg), cfg.CognitoClientID)
	enricher := enrich.NewClient(cfg.DetectionAPIURL, 60*time.Second)

	h := handlers.NewHandler(store, authService, enricher, cfg)

	r := gin.Default()

	sessionStore := cookie.NewStore([]byte(cfg.AuthSecret))
	r.Use(sessions.Sessions("frogstagram_session", sessionStore))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.AccessGuard(h.CurrentUserID))

	r.GET("/", h.RootHandler)
	r.GET("/health", h.HealthCheckHandler)

	r.POST("/auth/sign-up", h.SignUpHandler)
	r.POST("/auth/verify", h.VerifyHandler)
	r.POST("/auth/login", h.LoginHandler)
	r.POST("/auth/logout", h.LogoutHandler)
	r.GET("/auth/session", h.SessionHandler)

	r.GET("/api/posts", h.PostsHandler)
	r.POST("/api/posts/:postId/like", h.LikeHandler)
	r.DELETE("/api/posts/:postId/like", h.UnlikeHandler)
	r.POST("/api/posts/:postId/comment", h.CommentHandler)

	r.GET("/api/follow", h.FollowStatusHandler)
	r.POST("/api/follow", h.FollowHandler)
	r.DELETE("/api/follow", h.UnfollowHandler)

	r.POST("/api/s3-presigned-url", h.PresignedURLHandler)
	r.POST("/api/s3-delete", h.DeleteObjectHandler)
	r.GET("/api/images/*path", h.ImageHandler)

	r.POST("/create/details", h.CreateDetailsHandler)

	log.Println("Starting frogstagram server on", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalln(err)
	}
}
