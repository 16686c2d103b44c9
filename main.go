package main

import (
	"log"
	"os"
	"strings"

	"srcstruct/cmd"
	"srcstruct/pkg/logging"
	"srcstruct/pkg/version"

	"golang.org/x/term"
)

func main() {
	if err := logging.Setup(false, version.AppName, version.Version); err != nil {
		log.Printf("Failed to initialize logger: %v", err)
	}

	err := cmd.Execute()
	syncLogger()
	if err != nil {
		os.Exit(1)
	}
}

// syncLogger flushes the logger when stderr is a terminal or a regular file.
// The "invalid argument" error some platforms report for terminals is ignored.
func syncLogger() {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logging.Logger.Sync(); syncErr != nil {
		if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
