package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-version"
	"github.com/nulzo/model-registry-api/internal/cli"
)

// AppVersion is stamped at build time via -ldflags.
var AppVersion = "v0.0.0"

type githubRelease struct {
	TagName string `json:"tag_name"`
}

// CheckForUpdates compares AppVersion against the latest GitHub release
// and prints a warning when behind. Development builds carry the zero
// version and would always warn, so only production checks.
func CheckForUpdates(env string) {
	if env != "production" {
		return
	}

	const releaseURL = "https://api.github.com/repos/nulzo/model-registry-api/releases/latest"

	client := http.Client{
		Timeout: 2 * time.Second,
	}

	resp, err := client.Get(releaseURL)
	if err != nil {
		return
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return
	}

	current, err := version.NewVersion(AppVersion)
	if err != nil {
		return
	}

	latest, err := version.NewVersion(release.TagName)
	if err != nil {
		return
	}

	if current.LessThan(latest) {
		fmt.Println(cli.Style(fmt.Sprintf("%s You are running %s; the latest release is %s.", cli.CrossMark(), AppVersion, release.TagName), cli.Yellow))
		fmt.Println(cli.Style("  Pull the latest image to pick up fixes.", cli.Yellow))
	}
}
