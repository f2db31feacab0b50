package mdtransform

import (
	"errors"

	"github.com/teamup/mdtransform/internal/assets"
	"github.com/teamup/mdtransform/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrTreeIntegrity = errors.New("tree integrity check failed")
	ErrParse         = pipeline.ErrParse
	ErrHTMLRender    = pipeline.ErrHTMLRender

	// Style loading errors.
	ErrStyleNotFound   = assets.ErrStyleNotFound
	ErrInvalidStyleDir = assets.ErrInvalidStyleDir
	ErrInvalidStyle    = assets.ErrInvalidAssetName
)
