//go:build integration
// +build integration

package routes_test

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"shiftboard-backend/internal/testutils"
)

// TestMain ensures the shared Docker container is cleaned up after the
// router integration tests
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\nRouter tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()

	os.Exit(code)
}
