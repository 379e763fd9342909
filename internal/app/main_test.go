package app_test

import (
	"io"
	"os"
	"testing"

	"careerlink/internal/logger"
	"careerlink/internal/testutil"
)

func TestMain(m *testing.M) {
	logger.InitWithWriter("test", io.Discard)
	code := m.Run()
	testutil.Terminate()
	os.Exit(code)
}
