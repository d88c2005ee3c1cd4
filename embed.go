package folio

import "embed"

// EmbeddedAssets contains the page script and stylesheet shipped with the
// binary: folio.js, folio.css.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
