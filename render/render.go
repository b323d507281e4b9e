// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/gogpu/tailor"
	"github.com/gogpu/tailor/internal/fonts"
	"github.com/gogpu/tailor/tile"
)

// Job is everything an exporter may need.
type Job struct {
	Pattern *tailor.Pattern
	// Layout is required by paged exporters and ignored by sheet
	// exporters.
	Layout *tile.Layout
	// Fonts default to the embedded Go fonts when empty.
	Fonts fonts.Set
}

// FontsOrDefault returns j.Fonts, or the embedded fonts when unset.
func (j Job) FontsOrDefault() fonts.Set {
	if j.Fonts.Regular == nil || j.Fonts.Bold == nil {
		return fonts.Default()
	}
	return j.Fonts
}

// Exporter writes a pattern in one output format.
type Exporter interface {
	// Ext is the file name extension, including the dot.
	Ext() string
	// Export writes the job to w.
	Export(w io.Writer, job Job) error
}

// ExporterFactory creates a new exporter instance.
type ExporterFactory func() Exporter

var (
	registryMu sync.RWMutex
	exporters  = make(map[string]ExporterFactory)
)

// Register registers an exporter factory under name. It is called from
// init in exporter packages.
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory ExporterFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("render: Register factory is nil")
	}
	if _, dup := exporters[name]; dup {
		panic("render: Register called twice for " + name)
	}
	exporters[name] = factory
}

// Unregister removes an exporter. It is a no-op for unknown names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(exporters, name)
}

// NewExporter creates an exporter by name.
func NewExporter(name string) (Exporter, error) {
	registryMu.RLock()
	factory, ok := exporters[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("render: unknown exporter %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Exporters returns the registered names in sorted order.
func Exporters() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := exporters[name]
	return ok
}
