// Package webapp sets up the progressive web app assets for the application:
// the manifest file and the icon checks it depends on.
package webapp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Icon is one manifest icon entry.
type Icon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// Manifest is the web app manifest written to public/manifest.json.
type Manifest struct {
	Name            string `json:"name"`
	ShortName       string `json:"short_name"`
	StartURL        string `json:"start_url"`
	Display         string `json:"display"`
	BackgroundColor string `json:"background_color"`
	ThemeColor      string `json:"theme_color"`
	Icons           []Icon `json:"icons"`
}

// DefaultManifest returns the manifest the setup command writes when no
// overrides are given.
func DefaultManifest(name, shortName string) Manifest {
	return Manifest{
		Name:            name,
		ShortName:       shortName,
		StartURL:        "/",
		Display:         "standalone",
		BackgroundColor: "#ffffff",
		ThemeColor:      "#1a1a2e",
		Icons: []Icon{
			{Src: "/icons/icon-192x192.png", Sizes: "192x192", Type: "image/png"},
			{Src: "/icons/icon-512x512.png", Sizes: "512x512", Type: "image/png"},
		},
	}
}

// WriteManifest writes the manifest into dir, returning the manifest path
// and whether it was written. An existing manifest is left alone unless
// force is set, keeping the setup idempotent.
func WriteManifest(dir string, manifest Manifest, force bool) (string, bool, error) {
	path := filepath.Join(dir, "manifest.json")

	if _, err := os.Stat(path); err == nil && !force {
		return path, false, nil
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return path, false, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(dir, 0750); err != nil {
		return path, false, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return path, false, fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, true, nil
}

// MissingIcons returns the icon files referenced by the manifest that do not
// exist under dir.
func MissingIcons(dir string, manifest Manifest) []string {
	var missing []string
	for _, icon := range manifest.Icons {
		path := filepath.Join(dir, filepath.FromSlash(icon.Src))
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, icon.Src)
		}
	}
	return missing
}
