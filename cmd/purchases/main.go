// Job - начисление баллов по событиям завершенных покупок
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	config "github.com/glkeru/crm/internal/config"
	db "github.com/glkeru/crm/internal/db"
	kafka "github.com/glkeru/crm/internal/external/kafka"
	rabbit "github.com/glkeru/crm/internal/external/rabbitmq"
	interf "github.com/glkeru/crm/internal/interfaces"
	services "github.com/glkeru/crm/internal/services"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	cfg, err := config.Parse()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	// kafka
	reader, err := kafka.NewPurchaseReader(cfg)
	if err != nil {
		logger.Fatal("kafka initialization error", zap.Error(err))
	}
	defer reader.CloseReader()

	// rabbitmq
	publisher, err := rabbit.NewAccrualPublisher(cfg)
	if err != nil {
		logger.Fatal("rabbitmq initialization error", zap.Error(err))
	}
	defer publisher.Close()

	// database
	storage, err := db.NewCRMDB(cfg, logger)
	if err != nil {
		logger.Fatal("database initialization error", zap.Error(err))
	}
	defer storage.Close(context.Background())

	// cache
	var cache interf.CacheStorage
	redis, err := db.NewCacheService(cfg)
	if err != nil {
		logger.Error(err.Error())
	} else {
		cache = redis
	}

	// services
	serv := services.NewLoyaltyService(logger, storage, cache)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		<-interrupt
		cancel()
	}()

	// workers
	wg := &sync.WaitGroup{}
	wg.Add(cfg.PurchaseWorkers)
	for i := 0; i < cfg.PurchaseWorkers; i++ {
		go worker(ctx, serv, wg, logger, reader, publisher)
	}
	wg.Wait()
}

// worker for purchase events
func worker(ctx context.Context, serv *services.LoyaltyService, wg *sync.WaitGroup,
	logger *zap.Logger, reader *kafka.PurchaseReader, publisher *rabbit.AccrualPublisher) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		default:
			msg, err := reader.GetNewMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				logger.Error(err.Error())
				continue
			}

			customerID, amount, err := services.ParsePurchase(msg)
			if err != nil {
				logger.Error(err.Error())
				continue
			}

			result, err := serv.AccrueFromPurchase(ctx, customerID, amount)
			if err != nil {
				// неизвестный клиент - мягкая ошибка, обработка продолжается
				logger.Error(err.Error(), zap.String("customer", customerID))
				_ = publisher.Processed(ctx, rabbit.AccrualConfirm{
					CustomerID: customerID,
					Success:    false,
				})
				continue
			}

			err = publisher.Processed(ctx, rabbit.AccrualConfirm{
				CustomerID:   customerID,
				PointsEarned: result.PointsEarned,
				NewTier:      result.NewTier,
				Success:      true,
			})
			if err != nil {
				logger.Error(err.Error())
				continue
			}
		}
	}
}
