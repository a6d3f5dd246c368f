package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"boltgen/internal/config"
)

type presetItem struct {
	title, desc string
	overrides   string // applied on top of the current config
	path        string // JSON config file; replaces the current config
}

func (p presetItem) Title() string       { return p.title }
func (p presetItem) Description() string { return p.desc }
func (p presetItem) FilterValue() string { return p.title }

var builtinPresets = []presetItem{
	{title: "classic", desc: "midpoint, displacement 80", overrides: "mode=midpoint displacement=80 detail=2 branch_probability=0.3"},
	{title: "fine detail", desc: "midpoint, detail 1", overrides: "mode=midpoint detail=1"},
	{title: "no branches", desc: "midpoint, single channel", overrides: "mode=midpoint branch_probability=0"},
	{title: "storm", desc: "midpoint, heavy branching", overrides: "mode=midpoint displacement=120 branch_probability=0.6"},
	{title: "dual-front", desc: "two fronts meet", overrides: "mode=dualfront branch_length=7 max_steps=120 connect_threshold=12"},
	{title: "wander", desc: "dual-front, wide spread", overrides: "mode=dualfront angle_spread=3.14159"},
	{title: "never meet", desc: "dual-front fallback", overrides: "mode=dualfront connect_threshold=0 max_steps=60"},
}

// refreshPresets lists the built-in presets followed by JSON configs in cwd.
func (m *Model) refreshPresets() {
	items := make([]list.Item, 0, len(builtinPresets))
	for _, p := range builtinPresets {
		items = append(items, p)
	}
	var files []list.Item
	if entries, err := os.ReadDir(m.cwd); err == nil {
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || strings.ToLower(filepath.Ext(name)) != ".json" {
				continue
			}
			files = append(files, presetItem{title: name, desc: "config file", path: filepath.Join(m.cwd, name)})
		}
	} else {
		m.status = "read dir error: " + err.Error()
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].(presetItem).Title() < files[j].(presetItem).Title() })
	items = append(items, files...)
	m.l.SetItems(items)
}

// applyPreset switches configuration and regenerates with the current seed.
func (m *Model) applyPreset(p presetItem) {
	var (
		cfg config.File
		err error
	)
	if p.path != "" {
		cfg, err = config.Load(p.path)
	} else {
		cfg, err = m.cfg.ApplyOverrides(p.overrides)
	}
	if err != nil {
		m.status = "preset error: " + err.Error()
		return
	}
	seed := m.seedFor(cfg)
	m.cfg = cfg
	m.generate(seed, cfg.Mode)
	m.status = "preset " + p.title + "  " + m.status
}
