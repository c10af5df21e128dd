package constants

import (
	"os"
	"path/filepath"
)

const DefaultHomeEnv string = "AOC_HOME"
const ConfigEnv string = "AOC_CONFIG"
const SessionEnv string = "AOC_SESSION"
const YearEnv string = "AOC_YEAR"

var DefaultHome string

func init() {
	if home := os.Getenv(DefaultHomeEnv); home != "" {
		DefaultHome = home
		return
	}
	// ~/.aoc default
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		DefaultHome = ".aoc"
	} else {
		DefaultHome = filepath.Join(userHomeDir, ".aoc")
	}
}
