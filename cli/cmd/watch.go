package cmd

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchedExtensions = []string{".c", ".cc", ".cpp", ".cxx", ".h", ".hh", ".hpp", ".hxx", ".cs"}

func isWatchedFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, watched := range watchedExtensions {
		if ext == watched {
			return true
		}
	}
	return false
}

var (
	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Re-run the analysis whenever a source file in the directory tree changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				_ = cmd.Help()
				return errors.New("too many arguments")
			}
			logger := newLogger()

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer func() {
				_ = watcher.Close()
			}()

			err = filepath.WalkDir(directory, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					return watcher.Add(path)
				}
				return nil
			})
			if err != nil {
				return err
			}

			runOnce := func() {
				session, err := analyzeDirectory(logger)
				if err != nil {
					logger.WithError(err).Error("analysis failed")
					return
				}
				if err := session.Report(os.Stdout, verbose); err != nil {
					logger.WithError(err).Error("writing report failed")
				}
			}
			runOnce()
			logger.WithField("directory", directory).Info("watching for changes")

			// editors fire bursts of events per save; debounce them
			var pending <-chan time.Time
			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Op.Has(fsnotify.Create) {
						if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
							_ = watcher.Add(event.Name)
							continue
						}
					}
					if isWatchedFile(event.Name) {
						pending = time.After(250 * time.Millisecond)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					logger.WithError(err).Warn("watch error")
				case <-pending:
					pending = nil
					runOnce()
				}
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(watchCmd)
}
