package tui

import (
	"math/rand/v2"
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"boltgen/internal/config"
	"boltgen/internal/lightning"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Presets sidebar
	cwd string
	l   list.Model

	// Generation
	cfg   config.File
	seeds *rand.Rand
	seed  uint64
	bolt  lightning.Bolt
	err   error

	// Animation: gen invalidates ticks scheduled for an earlier bolt
	gen      int
	revealed int
	paused   bool

	// parameter editor
	editMode bool
	ta       textarea.Model

	// path table
	showTable bool
	tbl       table.Model
	tblRows   []table.Row

	// hover state
	hovering    bool
	hoverHasPos bool
	hoverX      float64
	hoverY      float64
}

// frameMsg advances the animation of bolt generation gen by one frame.
type frameMsg struct{ gen int }

func tick(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return frameMsg{gen: gen} })
}

// New builds a viewer for cfg and generates the first bolt from cfg.Seed.
func New(cfg config.File) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		cfg:         cfg,
		seeds:       lightning.NewSource(cfg.Seed),
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Presets"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "key=value overrides, e.g. mode=dualfront max_steps=80. Enter applies; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(8)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshPresets()
	m.generate(cfg.Seed, cfg.Mode)
	return m
}

func (m Model) Init() tea.Cmd { return m.animate() }

// animate schedules the next frame unless the bolt is fully drawn or paused.
func (m Model) animate() tea.Cmd {
	if m.paused || m.done() {
		return nil
	}
	return tick(m.cfg.FrameInterval(), m.gen)
}

func (m Model) done() bool { return m.revealed >= len(m.bolt.Segments) }

// Bolt returns the bolt currently on screen.
func (m Model) Bolt() lightning.Bolt { return m.bolt }

// seedFor keeps the current seed unless cfg sets a different one.
func (m Model) seedFor(cfg config.File) uint64 {
	if cfg.Seed != m.cfg.Seed {
		return cfg.Seed
	}
	return m.seed
}

// generate replaces the bolt and restarts the animation.
func (m *Model) generate(seed uint64, mode lightning.Mode) {
	m.gen++
	m.revealed = 0
	m.seed = seed
	bolt, err := m.cfg.GenerateMode(seed, mode)
	if err != nil {
		m.err = err
		m.bolt = lightning.Bolt{}
		m.status = "generate error: " + err.Error()
		return
	}
	m.err = nil
	m.bolt = bolt
	m.cfg.Mode = mode
	m.status = summary(bolt, seed)
	lightning.Logger().Debug("viewer generated bolt", "seed", seed, "mode", mode, "segments", len(bolt.Segments))
	if m.showTable {
		m.refreshTable()
	}
}
