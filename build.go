//go:build ignore

package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"
)

func main() {
	log.Println("Building plc-config...")

	version := "0.1.0"
	buildDate := time.Now().UTC().Format(time.RFC3339)

	ldflags := fmt.Sprintf("-X 'plc-tools/plc-config/version.Version=%s' -X 'plc-tools/plc-config/version.BuildDate=%s'", version, buildDate)

	cmd := exec.Command("go", "build", "-ldflags", ldflags, "./plc-config")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		log.Fatalf("Build failed: %v", err)
	}

	log.Println("Build successful.")
}
