package main

import (
	"github.com/knadh/koanf/providers/file"
)

// WatchInput re-runs check every time the file at path changes, for
// iterating on an input with the verdict in a second terminal. Editors
// that replace the file on save trigger a remove/create pair; the
// provider re-arms itself, so both land here as change events.
func WatchInput(path string, check func() error) error {
	f := file.Provider(path)
	err := f.Watch(func(event interface{}, watchErr error) {
		if watchErr != nil {
			logger.Error().Err(watchErr).Msg("watch")
			return
		}
		logger.Debug().Str("file", path).Msg("input changed")
		if err := check(); err != nil {
			report(path, err)
		}
	})
	if err != nil {
		return err
	}
	logger.Info().Str("file", path).Msg("watching")
	select {}
}
