package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"boltgen/internal/export"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout returns the canvas origin and size; View and mouse handling share it.
func (m Model) layout() (originX, originY, w, h int) {
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth + 1
	}
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	w = max(10, contentWidth-sw-1)
	return sw, headerHeight, w, contentHeight
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
		}
	case frameMsg:
		if msg.gen != m.gen || m.paused {
			return m, nil
		}
		m.revealed = min(len(m.bolt.Segments), m.revealed+m.cfg.SegmentsPerFrame)
		if m.done() && m.showTable {
			m.refreshTable()
		}
		return m, m.animate()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.editMode {
			return m.updateEditor(msg)
		}
		if m.showTable {
			switch msg.String() {
			case "a", "esc":
				m.showTable = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.generate(m.seeds.Uint64(), m.cfg.Mode)
			return m, m.animate()
		case "R":
			m.generate(m.seed, m.cfg.Mode)
			return m, m.animate()
		case "m":
			m.generate(m.seed, m.cfg.Mode.Next())
			return m, m.animate()
		case " ":
			m.paused = !m.paused
			if m.paused {
				m.status = "paused"
				return m, nil
			}
			// drop the tick scheduled before the pause
			m.gen++
			m.status = summary(m.bolt, m.seed)
			return m, m.animate()
		case "s":
			// skip to the finished bolt
			m.revealed = len(m.bolt.Segments)
		case "]":
			m.cfg.SegmentsPerFrame = min(64, m.cfg.SegmentsPerFrame*2)
			m.status = fmt.Sprintf("speed: %d segments/frame", m.cfg.SegmentsPerFrame)
		case "[":
			m.cfg.SegmentsPerFrame = max(1, m.cfg.SegmentsPerFrame/2)
			m.status = fmt.Sprintf("speed: %d segments/frame", m.cfg.SegmentsPerFrame)
		case "+", "=":
			if m.zoom < 16 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.25 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshPresets()
				m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
			}
		case "p":
			m.editMode = true
			m.ta.SetValue(m.cfg.Overrides())
			m.ta.Focus()
			m.status = "edit parameters"
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showTable = true
			m.refreshTable()
		case "e":
			name, err := m.exportSVG()
			if err != nil {
				m.status = "export error: " + err.Error()
			} else {
				m.status = "wrote " + name
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(presetItem); ok {
					m.applyPreset(it)
					return m, m.animate()
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		ox, oy, w, h := m.layout()
		cx, cy := msg.X-ox, msg.Y-oy
		if cx >= 0 && cx < w && cy >= 0 && cy < h {
			m.hovering = true
			m.hoverX, m.hoverY, m.hoverHasPos = m.cellToCanvas(cx, cy, w, h)
		} else {
			m.hovering = false
			m.hoverHasPos = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editMode = false
		m.ta.Blur()
		m.status = "edit cancelled"
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "edit: empty"
			return m, nil
		}
		cfg, err := m.cfg.ApplyOverrides(text)
		if err != nil {
			m.status = "edit error: " + err.Error()
			return m, nil
		}
		seed := m.seedFor(cfg)
		m.cfg = cfg
		m.editMode = false
		m.ta.Blur()
		m.generate(seed, cfg.Mode)
		return m, m.animate()
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// exportSVG writes the current bolt next to the working directory.
func (m Model) exportSVG() (string, error) {
	name := filepath.Join(m.cwd, fmt.Sprintf("bolt-%s-%d.svg", m.bolt.Mode, m.seed))
	f, err := os.Create(name)
	if err != nil {
		return "", err
	}
	if err := export.WriteSVG(f, m.bolt, export.DefaultSVGOptions()); err != nil {
		f.Close()
		return "", err
	}
	return name, f.Close()
}
