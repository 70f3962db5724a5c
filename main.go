package main

import (
	"log"
	"strings"
	"time"

	"photovault/auth"
	"photovault/config"
	"photovault/db"
	"photovault/handlers"
	"photovault/models"
	"photovault/storage"
	"photovault/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

func main() {
	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media/fetch"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default

	// Signup/login are the only routes without a session
	router.GET("/signup", handlers.SignupView)
	router.POST("/signup", handlers.Signup)
	router.GET("/login", handlers.LoginView)
	router.POST("/login", handlers.Login)

	authRouter := &auth.Router{Base: router}
	authRouter.POST("/logout", handlers.Logout)
	// Gallery
	authRouter.GET("/", handlers.GalleryView)
	authRouter.POST("/", handlers.GalleryUpload)
	authRouter.GET("/recently-added", handlers.RecentlyAddedView)
	authRouter.GET("/favourites", handlers.FavouritesView)
	authRouter.GET("/bin", handlers.BinView)
	authRouter.GET("/videos", handlers.VideosView)
	authRouter.GET("/search", handlers.SearchView)
	// Photo lifecycle
	authRouter.POST("/photo/delete/:id", handlers.PhotoDelete)
	authRouter.POST("/photo/restore/:id", handlers.PhotoRestore)
	authRouter.POST("/photo/delete-permanently/:id", handlers.PhotoDeletePermanently)
	authRouter.POST("/photo/favourite/:id", handlers.PhotoFavourite)
	// Video lifecycle
	authRouter.POST("/video/delete/:id", handlers.VideoDelete)
	authRouter.POST("/video/restore/:id", handlers.VideoRestore)
	authRouter.POST("/video/delete-permanently/:id", handlers.VideoDeletePermanently)
	authRouter.POST("/video/favourite/:id", handlers.VideoFavourite)
	// Albums
	authRouter.GET("/albums", handlers.AlbumListView)
	authRouter.GET("/album/create", handlers.AlbumCreateView)
	authRouter.POST("/album/create", handlers.AlbumCreate)
	authRouter.POST("/album/delete/:id", handlers.AlbumDelete)
	authRouter.GET("/album/:id", handlers.AlbumDetailView)
	authRouter.POST("/album/:id", handlers.AlbumUpload)
	// Stored bytes
	authRouter.GET("/media/fetch", handlers.MediaFetch)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
