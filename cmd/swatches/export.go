package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"

	tw "github.com/example/tailwindcolor"
)

// exportFile writes fams to path in the format named by its extension.
func exportFile(path string, fams []tw.Family, log *slog.Logger) error {
	format, err := tw.FormatForPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tw.Encode(f, format, fams); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info("palette exported", "path", path, "format", format, "families", len(fams))
	return nil
}

// exportWithDialog asks for a target file and exports fams to it.
// Failures are shown to the user and logged; cancelling is silent.
func exportWithDialog(fams []tw.Family, title string, log *slog.Logger) {
	path, err := dialog.File().
		Filter("YAML", "yaml", "yml").
		Filter("TOML", "toml").
		Filter("CSV", "csv").
		Filter("CSS", "css").
		Title(title).
		Save()
	if err != nil {
		if err != dialog.ErrCancelled {
			log.Error("save dialog failed", "err", err)
		}
		return
	}
	if path == "" {
		return
	}
	absPath, _ := filepath.Abs(path)
	if err := exportFile(absPath, fams, log); err != nil {
		log.Error("export failed", "path", absPath, "err", err)
		dialog.Message("Could not export to %s:\n%v", filepath.Base(absPath), err).Title("Export failed").Error()
	}
}
