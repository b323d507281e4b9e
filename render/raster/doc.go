// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster renders patterns to PNG images with gogpu/gg.
//
// [Renderer.WriteSheet] draws the whole sheet at a fixed scale, for
// previews. [Renderer.WritePage] and [Renderer.SavePages] draw the tiled
// print pages at a given resolution, one file per page, with the same
// marks and text as the PDF backend.
//
// A Renderer caches font faces by style and size across calls.
package raster
