// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render is the registry of pattern exporters.
//
// Exporters live in subpackages and register themselves by name from
// init, the same way database/sql drivers do. Import the ones you need for
// their side effect:
//
//	import (
//	    _ "github.com/gogpu/tailor/render/pdf"
//	    _ "github.com/gogpu/tailor/render/svg"
//	)
//
//	exp, err := render.NewExporter("pdf")
//	if err != nil {
//	    // not registered
//	}
//	err = exp.Export(w, render.Job{Pattern: p, Layout: layout})
//
// The built-in exporters are "png" (sheet overview), "svg" (sheet) and
// "pdf" (tiled pages).
package render
