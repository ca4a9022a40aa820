package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	"github.com/zync/orderline/internal/adapter/handler"
	"github.com/zync/orderline/internal/adapter/handler/pb"
	"github.com/zync/orderline/internal/adapter/messaging"
	"github.com/zync/orderline/internal/adapter/storage"
	"github.com/zync/orderline/internal/core/service"
)

const (
	defaultHTTPAddr    = ":8080"
	defaultGRPCAddr    = ":50051"
	defaultMySQLDSN    = "root:root@tcp(localhost:3306)/orderline?parseTime=true"
	defaultRedisAddr   = "localhost:6379"
	defaultWorkerCount = 4
	defaultQueueSize   = 1000

	messageTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpAddr := envOr("ORDERLINE_HTTP_ADDR", defaultHTTPAddr)
	grpcAddr := envOr("ORDERLINE_GRPC_ADDR", defaultGRPCAddr)
	mysqlDSN := envOr("MYSQL_DSN", defaultMySQLDSN)
	redisAddr := envOr("REDIS_ADDR", defaultRedisAddr)
	workerCount := envIntOr("ORDERLINE_WORKERS", defaultWorkerCount)
	queueSize := envIntOr("ORDERLINE_QUEUE_SIZE", defaultQueueSize)

	// Initialize MySQL
	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		log.Fatalf("failed to connect mysql: %v", err)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}
	log.Println("connected to mysql")

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	log.Println("connected to redis")

	// Initialize adapters
	redisAdapter := storage.NewRedisAdapter(rdb)
	mysqlAdapter := storage.NewMySQLAdapter(db)
	twilioClient := messaging.NewTwilioClient(
		os.Getenv("TWILIO_ACCOUNT_SID"),
		os.Getenv("TWILIO_AUTH_TOKEN"),
		os.Getenv("TWILIO_WHATSAPP_FROM"),
		messageTimeout,
	)

	// Notification fan-out: realtime events plus chat messages sent
	// off the request path by a bounded worker pool.
	fanout := service.NewFanout(redisAdapter, twilioClient, queueSize, messageTimeout)
	fanout.Start(workerCount)
	log.Printf("started %d notification workers", workerCount)

	// Initialize services
	orderService := service.NewOrderService(mysqlAdapter, redisAdapter, fanout)
	chatService := service.NewChatService(mysqlAdapter, orderService)

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	grpcHandler := handler.NewGRPCHandler(orderService, mysqlAdapter, redisAdapter)
	pb.RegisterOrderPipelineServer(grpcServer, grpcHandler)

	// Start gRPC server
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(orderService, chatService, mysqlAdapter)
	mux := http.NewServeMux()
	httpHandler.Register(mux)

	httpServer := &http.Server{
		Addr:    httpAddr,
		Handler: mux,
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	// Stop HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	// Stop gRPC server
	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")

	// Drain the notification queue
	fanout.Close()
	log.Println("notification workers stopped")

	// Close connections
	rdb.Close()
	db.Close()
	log.Println("connections closed")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatalf("invalid %s: %q", key, v)
	}
	return n
}
