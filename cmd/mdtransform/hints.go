package main

import (
	"errors"

	"github.com/teamup/mdtransform"
	"github.com/teamup/mdtransform/internal/assets"
	"github.com/teamup/mdtransform/internal/config"
	"github.com/teamup/mdtransform/internal/fileutil"
	"github.com/teamup/mdtransform/internal/hints"
)

// hintFor returns an actionable hint for err, or "" when none applies.
// cfgName is the --config or MDTRANSFORM_CONFIG value.
func hintFor(err error, cfgName string) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		if cfgName == "" || fileutil.IsFilePath(cfgName) {
			return hints.ForConfigNotFound(nil)
		}
		return hints.ForConfigNotFound(config.SearchPaths(cfgName))
	case errors.Is(err, mdtransform.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.NewEmbeddedLoader().Names())
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, ErrNoInput):
		return hints.ForNoMarkdownFiles()
	case errors.Is(err, mdtransform.ErrEmptyMarkdown):
		return hints.ForEmptyInput()
	default:
		return ""
	}
}
