// @title Airway Compatibility API
// @version 1.0
// @description API подбора совместимости эндотрахеальных трубок и надгортанных воздуховодов. Нормализация шумных названий устройств, классификация зазора, выгрузка результатов.

// @contact.name API Support
// @contact.email support@example.com

// @license.name Internal Use Only

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airwayserver/database"
	"airwayserver/internal/config"
	"airwayserver/server"
)

func main() {
	log.Println("Запуск Airway Compatibility Server...")

	// Загружаем конфигурацию из окружения; LoadConfig сам валидирует ее
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	server.SetupLogger(cfg.LogLevel)

	// Открываем базу каталогов
	dbConfig := database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}
	db, err := database.NewDBWithConfig(cfg.DatabasePath, dbConfig)
	if err != nil {
		log.Fatalf("Ошибка открытия базы данных: %v", err)
	}
	defer db.Close()
	log.Printf("Используется база данных: %s", cfg.DatabasePath)

	srv := server.NewServer(cfg, db)

	// Начальная загрузка каталогов: из базы, если она уже наполнена,
	// иначе из JSON файлов. Отсутствие данных не фатально.
	if sads, etts, err := db.CatalogCounts(); err == nil && sads+etts > 0 {
		if err := srv.CatalogService().Reload(); err != nil {
			log.Printf("Предупреждение: не удалось загрузить каталоги из базы: %v", err)
		}
	} else {
		srv.CatalogService().LoadFromFiles(cfg.SADCatalogPath, cfg.ETTCatalogPath)
	}

	// Запускаем сервер в отдельной горутине
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Ждем сигнал остановки или ошибку сервера
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	case sig := <-sigCh:
		log.Printf("Получен сигнал %v, останавливаем сервер...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Ошибка остановки сервера: %v", err)
		}
	}

	log.Println("Сервер остановлен")
}
