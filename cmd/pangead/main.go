package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bitnation/pangea-core/pkg/app"
	"github.com/bitnation/pangea-core/pkg/app/daemon"
	"github.com/bitnation/pangea-core/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = daemon.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "pangead failed: %v\n", err)
		os.Exit(1)
	}
}
