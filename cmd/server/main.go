// Command server starts the trajectory finder's optional HTTP API server.
//
// Usage:
//
//	server [flags]
//
// Flags:
//
//	-addr string
//	    Server address (default ":8080")
//	-read-timeout duration
//	    HTTP read timeout (default 30s)
//	-write-timeout duration
//	    HTTP write timeout (default 30s)
//	-k int
//	    Default minimum number of processes the ILP must select (default 1)
//	-cores int
//	    Worker pool size for ingestion and conflict analysis (default GOMAXPROCS)
//	-parallelize
//	    Run fan-out stages concurrently (default true)
//
// Example:
//
//	# Start server on default port
//	server
//
//	# Start server on custom port with a higher default k
//	server -addr :9090 -k 2
//
// The server exposes the following endpoints:
//
//	POST   /api/v1/trajectories/compute    - Compute trajectories for posted DAGs
//	GET    /health                         - Health check
//	GET    /health/live                    - Liveness probe
//	GET    /health/ready                   - Readiness probe
//	GET    /metrics                        - Prometheus metrics
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/config"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/server"
)

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	readTimeout := flag.Duration("read-timeout", 30*time.Second, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", 30*time.Second, "HTTP write timeout")
	k := flag.Int("k", 1, "Default minimum number of processes the ILP must select")
	cores := flag.Int("cores", 0, "Worker pool size for ingestion and conflict analysis (0 = GOMAXPROCS)")
	parallelize := flag.Bool("parallelize", true, "Run fan-out stages concurrently")

	flag.Parse()

	serverConfig := server.Config{
		Address:            *addr,
		ReadTimeout:        *readTimeout,
		WriteTimeout:       *writeTimeout,
		ShutdownTimeout:    10 * time.Second,
		MaxRequestBodySize: 10 * 1024 * 1024, // 10MB
		EnableCORS:         true,
	}

	pipelineConfig := config.Default()
	pipelineConfig.K = *k
	pipelineConfig.Cores = *cores
	pipelineConfig.Parallelize = *parallelize

	srv, err := server.New(serverConfig, pipelineConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create server: %v\n", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		fmt.Printf("Starting trajectory finder server on %s\n", *addr)
		fmt.Printf("Health check:     http://localhost%s/health\n", *addr)
		fmt.Printf("Liveness probe:   http://localhost%s/health/live\n", *addr)
		fmt.Printf("Readiness probe:  http://localhost%s/health/ready\n", *addr)
		fmt.Printf("Metrics:          http://localhost%s/metrics\n", *addr)
		fmt.Printf("API endpoint:     http://localhost%s/api/v1/trajectories/compute\n", *addr)
		fmt.Println("\nPress Ctrl+C to shutdown")

		if err := srv.Start(); err != nil {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	case sig := <-sigChan:
		fmt.Printf("\nReceived signal: %v\n", sig)
		fmt.Println("Shutting down gracefully...")

		ctx, cancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Server stopped")
	}
}
