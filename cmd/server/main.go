// @title Document Parser API
// @version 1.0
// @description Распознавание форматов российских документов (ИНН, ОГРН, СНИЛС, паспорт, ВУ, ГРЗ, VIN) с проверкой контрольных сумм.

// @license.name Internal Use Only

// @host localhost:9999
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

	"docparser/database"
	"docparser/internal/config"
	"docparser/internal/domain/documents"
	"docparser/server"
	"docparser/server/monitoring"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════")
	log.Println("🚀 Запуск Document Parser...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	server.SetupLogger(cfg.SlogLevel())

	metrics := monitoring.NewMetrics()
	health := monitoring.NewHealthChecker(server.Version)

	// Журнал необязателен: без него сервис только распознает
	var history documents.HistoryRepository
	if cfg.HistoryEnabled {
		historyDB, err := database.NewHistoryDBWithConfig(cfg.HistoryDatabasePath, database.DBConfig{
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		})
		if err != nil {
			log.Fatalf("Ошибка создания журнала распознаваний: %v", err)
		}
		defer historyDB.Close()

		history = historyDB
		health.RegisterPinger("history", historyDB)
		log.Printf("Используется журнал распознаваний: %s", cfg.HistoryDatabasePath)
	} else {
		log.Println("Журнал распознаваний отключен")
	}

	service := documents.NewService(history, metrics, documents.Options{
		MaxInputLength: cfg.MaxInputLength,
		MaxBatchSize:   cfg.MaxBatchSize,
	})

	srv := server.NewServer(cfg, service, metrics, health)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("═══════════════════════════════════════════════════════")
	log.Printf("✓ API доступно: http://localhost:%s/api/documents", cfg.Port)
	if cfg.SwaggerEnabled {
		log.Printf("✓ Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)
	}
	log.Println("  Для остановки нажмите Ctrl+C")
	log.Println("═══════════════════════════════════════════════════════")

	select {
	case err := <-errChan:
		if err != nil {
			log.Printf("✗ Ошибка запуска сервера: %v", err)
			return
		}
	case <-sigChan:
		log.Println("⏹  Получен сигнал завершения, останавливаю сервер...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		health.LogHealthStatus(ctx)
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("✗ Ошибка при остановке сервера: %v", err)
		} else {
			log.Println("✓ Сервер успешно остановлен")
		}
	}
}
