// Package monitor is a single-step debugger for the cpu package: a
// small bubbletea TUI that shows register state, flags, a scrolling
// memory page and the current instruction's disassembly, and lets a
// developer step the chip one instruction at a time. It is purely a
// development aid; nothing in cpu, bus or memory depends on it.
package monitor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/chacovskyle/nes6502core/cpu"
	"github.com/chacovskyle/nes6502core/disassemble"
)

// Bus is the address space the monitor reads to render memory and
// disassembly. cpu.Bus, bus.Bus and memory.Region all satisfy it.
type Bus interface {
	disassemble.Reader
	Write8(addr uint16, v uint8)
}

const bytesPerRow = 16

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	setFlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	panelStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Model is the bubbletea model wrapping a running chip. Zero value is
// not usable; build one with New.
type Model struct {
	chip   *cpu.Chip
	bus    Bus
	rows   []uint16 // row start addresses shown in the memory panel
	prevPC uint16
	ticks  int
	err    error
	quit   bool
}

// New returns a Model that watches chip, rendering the memory panel
// starting at rowStart (rounded down to a 16 byte boundary) for rows
// rows.
func New(chip *cpu.Chip, bus Bus, rowStart uint16, rows int) Model {
	base := rowStart - rowStart%bytesPerRow
	m := Model{chip: chip, bus: bus, prevPC: chip.PC}
	for i := 0; i < rows; i++ {
		m.rows = append(m.rows, base+uint16(i*bytesPerRow))
	}
	return m
}

// Init satisfies tea.Model. The monitor has no async startup work.
func (m Model) Init() tea.Cmd { return nil }

// Update advances the chip by one full instruction on space or "j",
// and quits on "q" or ctrl+c.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		m.quit = true
		return m, tea.Quit
	case " ", "j":
		m.prevPC = m.chip.PC
		m.ticks += stepInstruction(m.chip)
	}
	return m, nil
}

// stepInstruction clocks the chip through the idle ticks left over from
// the previous instruction (or reset) and the tick on which it decodes
// and fully executes exactly one instruction, returning how many clock
// ticks that took.
func stepInstruction(c *cpu.Chip) int {
	ticks := 1
	for !c.Clock(false) {
		ticks++
	}
	return ticks
}

// View renders the register/flag panel beside the memory page table
// and the upcoming disassembly, bubbletea's per-frame full redraw.
func (m Model) View() string {
	if m.quit {
		return ""
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, panelStyle.Render(m.memoryPanel()), panelStyle.Render(m.registerPanel())),
		"",
		panelStyle.Render(m.disassemblyPanel()),
		"",
		"space/j: step one instruction   q: quit",
	)
}

func (m Model) memoryPanel() string {
	lines := []string{headerStyle.Render("addr  | 0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F")}
	for _, row := range m.rows {
		line := fmt.Sprintf("%.4X  | ", row)
		var cells []string
		for i := 0; i < bytesPerRow; i++ {
			addr := row + uint16(i)
			b := fmt.Sprintf("%.2X", m.bus.Read8(addr))
			if addr == m.chip.PC {
				b = currentStyle.Render(b)
			}
			cells = append(cells, b)
		}
		lines = append(lines, line+strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) registerPanel() string {
	flag := func(name string, bit uint8) string {
		if m.chip.Flag(bit) {
			return setFlagStyle.Render(name)
		}
		return "."
	}
	flags := strings.Join([]string{
		flag("N", cpu.FlagN), flag("V", cpu.FlagV), flag("U", cpu.FlagU), flag("B", cpu.FlagB),
		flag("D", cpu.FlagD), flag("I", cpu.FlagI), flag("Z", cpu.FlagZ), flag("C", cpu.FlagC),
	}, " ")
	return fmt.Sprintf(
		"%s\nPC: %.4X (was %.4X)\nA:  %.2X\nX:  %.2X\nY:  %.2X\nSP: %.2X\nP:  %.2X\nticks: %d\n\n%s",
		headerStyle.Render("registers"),
		m.chip.PC, m.prevPC, m.chip.A, m.chip.X, m.chip.Y, m.chip.SP, m.chip.P, m.ticks,
		flags,
	)
}

func (m Model) disassemblyPanel() string {
	lines := disassemble.Listing(m.chip.PC, m.bus, 6)
	if len(lines) > 0 {
		lines[0] = currentStyle.Render(lines[0])
	}
	return headerStyle.Render("next") + "\n" + strings.Join(lines, "\n")
}

// Dump returns a go-spew dump of the chip's exported state, useful
// when the TUI itself has to be bypassed (piping to a log file, a
// failing-test repro).
func Dump(c *cpu.Chip) string {
	return spew.Sdump(c)
}

// Run starts the interactive monitor and blocks until the user quits.
// Returns an error only if bubbletea itself failed to run, not for
// any error encountered by the chip (the core has no fatal states).
func Run(chip *cpu.Chip, bus Bus) error {
	_, err := tea.NewProgram(New(chip, bus, chip.PC, 5)).Run()
	return err
}
