package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	mcp "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport/stdio"

	"github.com/nerdfunk-net/nautobot-mcp/internal/config"
	"github.com/nerdfunk-net/nautobot-mcp/internal/instancelock"
	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
	"github.com/nerdfunk-net/nautobot-mcp/internal/service"
)

func main() {
	logger := logger.New()

	cfg := config.LoadConfig()

	logger.Info("Nautobot MCP Server starting...")

	// Acquire instance lock to prevent multiple servers
	lockDir := os.Getenv("NAUTOBOT_MCP_LOCK_DIR")
	if lockDir == "" {
		lockDir = "/tmp"
	}
	instanceLock := instancelock.NewInstanceLock(lockDir)

	if running, pid, err := instancelock.CheckRunningInstance(lockDir); running {
		logger.Fatalf("Another instance of Nautobot MCP Server is already running (PID: %d)", pid)
	} else if err != nil {
		logger.Error("Warning: Could not check for running instances: %v", err)
	}

	logger.Debug("Acquiring instance lock at: %s", instanceLock.GetLockFilePath())
	if err := instanceLock.Acquire(3, 500*time.Millisecond); err != nil {
		logger.Fatalf("Failed to acquire instance lock: %v\nAnother instance may be running or starting up.", err)
	}
	logger.Debug("Instance lock acquired successfully")

	defer func() {
		logger.Debug("Releasing instance lock...")
		if err := instanceLock.Release(); err != nil {
			logger.Error("Failed to release instance lock: %v", err)
		} else {
			logger.Debug("Instance lock released successfully")
		}
	}()

	// Log essential environment configuration at INFO level
	logger.Info("Environment initialized - Nautobot URL: %s", cfg.Nautobot.URL)
	if cfg.Nautobot.Token != "" && cfg.Nautobot.Token != config.DefaultToken {
		logger.Info("Environment initialized - API token: configured")
	} else {
		logger.Info("Environment initialized - API token: using default (set NAUTOBOT_TOKEN)")
	}
	if cfg.Nautobot.InsecureSkipVerify {
		logger.Info("Environment initialized - TLS verification: disabled")
	} else {
		logger.Info("Environment initialized - TLS verification: enabled")
	}

	logger.Debug("Creating Nautobot MCP service...")
	nautobotService, err := service.NewNautobotMCPService(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to create service: %v", err)
	}

	// Reachability is checked up front but a failure is not fatal; the
	// Nautobot instance may come up after the MCP host starts us.
	if err := nautobotService.TestConnection(); err != nil {
		logger.Warn("Nautobot is not reachable yet: %v", err)
	} else {
		logger.Info("Nautobot connection verified")
	}

	// stdio transport for MCP host compatibility
	logger.Debug("Creating MCP server with stdio transport...")
	transport := stdio.NewStdioServerTransport()
	server := mcp.NewServer(transport)

	logger.Debug("Registering Nautobot tools...")
	if err := nautobotService.RegisterTools(server); err != nil {
		logger.Fatalf("Failed to register tools: %v", err)
	}
	logger.Debug("Tools registered successfully!")

	logger.Debug("Registering prompt workflows...")
	if err := nautobotService.RegisterPrompts(server); err != nil {
		logger.Fatalf("Failed to register prompts: %v", err)
	}
	logger.Debug("Prompt workflows registered successfully!")

	logger.Debug("Registering contextual resources...")
	if err := nautobotService.RegisterResources(server); err != nil {
		logger.Fatalf("Failed to register resources: %v", err)
	}
	logger.Debug("Contextual resources registered successfully!")

	if fileInfo, _ := os.Stdin.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		logger.Debug("Running in interactive mode (TTY detected)")
		logger.Debug("Server is ready and waiting for MCP protocol messages on stdin...")
	} else {
		logger.Debug("Running in pipe mode (stdin redirected)")
	}

	// Setup graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	logger.Debug("Starting Nautobot MCP server...")
	serverErr := make(chan error, 1)
	go func() {
		if err := server.Serve(); err != nil {
			serverErr <- err
		}
	}()

	logger.Debug("MCP server is now running and waiting for connections...")

	select {
	case err := <-serverErr:
		logger.Fatalf("Server error: %v", err)
	case sig := <-shutdown:
		logger.Info("Received signal %v, shutting down gracefully...", sig)

		if err := nautobotService.Shutdown(30 * time.Second); err != nil {
			logger.Error("Error during service shutdown: %v", err)
		}

		if err := logger.Close(); err != nil {
			logger.Error("Error closing logger: %v", err)
		}

		logger.Info("Server shutdown complete")
		os.Exit(0)
	}
}
