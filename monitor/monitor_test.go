package monitor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chacovskyle/nes6502core/cpu"
)

type flatBus struct {
	addr [65536]uint8
}

func (m *flatBus) Read8(a uint16) uint8     { return m.addr[a] }
func (m *flatBus) Write8(a uint16, v uint8) { m.addr[a] = v }
func (m *flatBus) Read16(a uint16) uint16 {
	return uint16(m.Read8(a+1))<<8 | uint16(m.Read8(a))
}
func (m *flatBus) Write16(a uint16, v uint16) {
	m.Write8(a, uint8(v&0xFF))
	m.Write8(a+1, uint8(v>>8))
}

func newTestModel() (Model, *flatBus) {
	b := &flatBus{}
	b.Write16(0xFFFC, 0x8000)
	b.Write8(0x8000, 0xA9) // LDA #$37
	b.Write8(0x8001, 0x37)
	b.Write8(0x8002, 0xEA) // NOP
	c := cpu.New(b)
	c.Reset()
	return New(c, b, 0x8000, 3), b
}

func TestStepInstructionAdvancesPCAndRegisters(t *testing.T) {
	m, b := newTestModel()
	_ = b
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	nm := next.(Model)
	if nm.chip.A != 0x37 {
		t.Errorf("A = %.2X, want 37", nm.chip.A)
	}
	if nm.chip.PC != 0x8002 {
		t.Errorf("PC = %.4X, want 8002", nm.chip.PC)
	}
	if nm.ticks == 0 {
		t.Error("ticks not advanced after stepping an instruction")
	}
}

func TestQuitSetsQuitFlag(t *testing.T) {
	m, _ := newTestModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	nm := next.(Model)
	if !nm.quit {
		t.Error("quit flag not set after q")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command after q")
	}
}

func TestViewRendersRegistersAndDisassembly(t *testing.T) {
	m, _ := newTestModel()
	view := m.View()
	if !strings.Contains(view, "registers") {
		t.Error("view missing register panel header")
	}
	if !strings.Contains(view, "PC:") {
		t.Error("view missing PC readout")
	}
}
