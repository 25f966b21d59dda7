// Command componentgen writes a RegisterComponents function for every type
// in a package marked with an //ecs:component directive.
//
// Usage:
//
//	//go:generate go run ../cmd/componentgen -dir . -out components_gen.go
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/plus3/paddlearena/logging"
	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", ".", "Package directory to scan.")
	out := flag.String("out", "components_gen.go", "Output file, relative to -dir.")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error).")
	flag.Parse()

	logger := logging.Must(*logLevel, true)
	defer logger.Sync()

	pkg, err := Scan(*dir)
	if err != nil {
		logger.Fatal("scan failed", zap.String("dir", *dir), zap.Error(err))
	}

	src, err := Render(pkg)
	if err != nil {
		logger.Fatal("render failed", zap.Error(err))
	}

	path := filepath.Join(*dir, *out)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		logger.Fatal("write failed", zap.String("path", path), zap.Error(err))
	}

	logger.Info("generated component registration",
		zap.String("package", pkg.Name),
		zap.Strings("components", pkg.Components),
		zap.String("path", path),
	)
}
