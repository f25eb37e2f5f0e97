package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront-app/config"
	"storefront-app/database"
	authapi "storefront-app/internal/api/auth"
	contactapi "storefront-app/internal/api/contact"
	contentapi "storefront-app/internal/api/content"
	galleryapi "storefront-app/internal/api/gallery"
	pastworksapi "storefront-app/internal/api/pastworks"
	productsapi "storefront-app/internal/api/products"
	sectionsapi "storefront-app/internal/api/sections"
	stripewebhooks "storefront-app/internal/api/stripewebhook"
	routes "storefront-app/internal/app/http"
	"storefront-app/internal/domain/contact"
	"storefront-app/internal/domain/content"
	"storefront-app/internal/domain/gallery"
	"storefront-app/internal/domain/pastworks"
	"storefront-app/internal/domain/products"
	"storefront-app/internal/domain/sections"
	"storefront-app/internal/domain/users"
	"storefront-app/internal/infra/storage"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	db, err := database.Init(config.DB_URL)
	if err != nil {
		log.Fatal("❌ Database init failed: ", err)
	}

	store, err := storage.NewFromEnv()
	if err != nil {
		log.Fatal("❌ Storage init failed: ", err)
	}

	userSvc := users.NewService(db)
	gallerySvc := gallery.NewService(db, store)
	contentSvc := content.NewService(db)
	commissionSvc := sections.NewCommissionService(db)
	aboutSvc := sections.NewAboutService(db)
	pastworksSvc := pastworks.NewService(db, store)
	productsSvc := products.NewService(db, store)
	contactSvc := contact.NewService(db)

	if err := userSvc.SeedAdmin(config.ADMIN_EMAIL, config.ADMIN_PASSWORD); err != nil {
		log.Fatal("❌ Admin seed failed: ", err)
	}
	if err := contentSvc.Seed(); err != nil {
		log.Fatal("❌ Content seed failed: ", err)
	}
	if err := commissionSvc.Seed(); err != nil {
		log.Fatal("❌ Commission seed failed: ", err)
	}
	if err := aboutSvc.Seed(); err != nil {
		log.Fatal("❌ About seed failed: ", err)
	}

	r := gin.Default()

	// CORS must be registered before the routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Handlers{
		Auth:       authapi.NewHandler(userSvc),
		Gallery:    galleryapi.NewHandler(gallerySvc),
		Content:    contentapi.NewHandler(contentSvc),
		Commission: sectionsapi.NewHandler(commissionSvc),
		About:      sectionsapi.NewHandler(aboutSvc),
		PastWorks:  pastworksapi.NewHandler(pastworksSvc),
		Products:   productsapi.NewHandler(productsSvc),
		Contact:    contactapi.NewHandler(contactSvc),
		Webhook:    stripewebhooks.NewHandler(productsSvc),
	})

	r.Run(":" + config.PORT)
}
