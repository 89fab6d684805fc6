package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/nikhilpktcr/dietPlanner/config"
	"github.com/nikhilpktcr/dietPlanner/routes"
	"github.com/nikhilpktcr/dietPlanner/services"
	"github.com/nikhilpktcr/dietPlanner/utils"
)

func main() {
	config.InitLogger()
	defer config.Logger().Sync()

	config.InitDB()
	utils.InitMailer()

	hub := services.NewRealtimeHub()
	services.InitRealtime(hub)

	r := routes.SetupRouter(hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	config.Logger().Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		config.Logger().Fatal("server exited", zap.Error(err))
	}
}
