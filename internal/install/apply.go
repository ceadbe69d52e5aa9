package install

import (
	"fmt"

	"github.com/zen-explorer/zen-explorer/internal/messages"
	"github.com/zen-explorer/zen-explorer/internal/stylesheet"
)

// apply renders the session manifest and reconciles the profile's
// stylesheets with it through the configured strategy.
func (s *session) apply() error {
	composed := stylesheet.Compose(s.current)
	s.result.Stylesheets = composed

	writer, err := stylesheet.Resolve(s.mgr.strategy, s.paths, s.readText, s.manifestExists)
	if err != nil {
		return err
	}
	s.result.Strategy = writer.Strategy()

	writes, err := writer.Plan(s.paths, composed, s.readText)
	if err != nil {
		return fmt.Errorf(messages.InstallPlanStylesheetsFmt, s.result.Profile, err)
	}
	if len(writes) == 0 {
		return nil
	}
	if s.opts.Diff {
		if err := s.previewWrites(writes); err != nil {
			return err
		}
	}
	if err := s.exec.MkdirAll(s.paths.ChromeDir, 0o755); err != nil {
		return fmt.Errorf(messages.InstallCreateDirFmt, s.paths.ChromeDir, err)
	}
	for _, w := range writes {
		if err := s.exec.WriteFileAtomic(w.Path, w.Data, w.Perm); err != nil {
			return fmt.Errorf(messages.InstallWriteStylesheetFmt, w.Path, err)
		}
	}
	return nil
}
