package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/purehouse/post-service/internal/config"
	"github.com/purehouse/post-service/internal/handler"
	"github.com/purehouse/post-service/internal/notifier"
	"github.com/purehouse/post-service/internal/repository"
	"github.com/purehouse/post-service/internal/repository/mongodb"
	"github.com/purehouse/post-service/internal/server"
	"github.com/purehouse/post-service/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/purehouse/post-service/pkg/logger"
)

func main() {
	ctx := context.Background()

	// a missing .env is fine in containers, the environment is already set
	_ = loadEnv()

	log := logger.New(config.LogFromEnv())
	defer log.Sync()

	if err := initConfig(); err != nil {
		log.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	mongoConfig := config.MongoFromEnv()
	db, err := mongodb.Connect(ctx, mongoConfig)
	if err != nil {
		log.Sugar().Panicf("failed to connect to mongo: %s", err.Error())
	}
	if err := db.Ping(ctx, readpref.Primary()); err != nil {
		log.Sugar().Panicf("failed to ping mongo: %s", err.Error())
	}
	log.Info("Successfully connected to MongoDB")

	redisOptions := &redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
	}
	rdb := redis.NewClient(redisOptions)
	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Sugar().Panicf("failed to ping redis: %s", err.Error())
	}
	log.Sugar().Infof("Successfully connected to Redis: %s", pong)

	dispatcher := notifier.New(config.NotifierFromEnv())

	repos := repository.New(db.Database(mongoConfig.Database), rdb)
	services := service.New(log, repos, dispatcher)
	handlers := handler.New(services, db)

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func() {
		if err := srv.Run(serverConfig); err != nil {
			log.Sugar().Infof("http server stopped: %s", err.Error())
		}
	}()

	log.Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*15)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Sugar().Errorf("failed to shutdown http server: %s", err.Error())
	}
	if err := db.Disconnect(shutdownCtx); err != nil {
		log.Sugar().Errorf("failed to disconnect from mongo: %s", err.Error())
	}
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
