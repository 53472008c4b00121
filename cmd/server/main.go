package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/programadorfullstackmern/carbarpart-api/internal/config"
	"github.com/programadorfullstackmern/carbarpart-api/internal/controllers"
	"github.com/programadorfullstackmern/carbarpart-api/internal/logger"
	"github.com/programadorfullstackmern/carbarpart-api/internal/repository"
	"github.com/programadorfullstackmern/carbarpart-api/internal/routes"
	"github.com/programadorfullstackmern/carbarpart-api/internal/storage"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	logger.Setup(cfg.LogFile, cfg.LogLevel)
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	db, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("No se pudo conectar a MongoDB")
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.WithError(err).Fatal("No se pudieron crear los índices")
	}

	imgAutos, err := storage.NewImageStore(filepath.Join(cfg.UploadDir, "autos"), "auto", 5<<20,
		[]string{"image/jpeg", "image/png", "image/gif"})
	if err != nil {
		log.WithError(err).Fatal("No se pudo preparar el directorio de imágenes de autos")
	}
	imgPiezas, err := storage.NewImageStore(filepath.Join(cfg.UploadDir, "piezas"), "pieza", 10<<20,
		[]string{"image/jpeg", "image/png", "image/gif", "application/pdf"})
	if err != nil {
		log.WithError(err).Fatal("No se pudo preparar el directorio de imágenes de piezas")
	}

	autoRepo := repository.NewAutoRepository(db)
	piezaRepo := repository.NewPiezaRepository(db)

	r := routes.SetupRouter(routes.Deps{
		Autos:     controllers.NewAutoController(autoRepo, piezaRepo, imgAutos),
		Piezas:    controllers.NewPiezaController(piezaRepo, autoRepo, imgPiezas),
		UploadDir: cfg.UploadDir,
	})

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.WithField("puerto", cfg.Port).Info("🚀 Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server error")
		}
	}()

	<-ctx.Done()
	log.Info("Apagando el servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Apagado forzado")
	}
	logrus.Info("Servidor detenido")
}
