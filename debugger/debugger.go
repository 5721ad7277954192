// Package debugger provides an interactive terminal UI for single-stepping
// a Processor over a Bus: a bubbletea model driving a lipgloss layout, with
// go-spew for raw opcode dumps.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"nes6502/bus"
	"nes6502/cpu"
	"nes6502/loader"
)

// statusBitNames lists the eight status register bits, most significant
// first.
var statusBitNames = [8]string{"N", "V", "_", "B", "D", "I", "Z", "C"}

type model struct {
	cpu *cpu.Processor
	bus *bus.Bus

	prevPC uint16
	err    error
}

// Init returns no command; the program is already loaded and PC parked by
// Run before the model starts.
func (m model) Init() tea.Cmd {
	return nil
}

// Update advances the Processor by one instruction on space or "j", and
// quits on "q" or a Step error.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			if err := m.cpu.Step(m.bus); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of the bus as a line, highlighting the
// byte at the current PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.bus.Read(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	p := m.cpu.P()
	var flags strings.Builder
	for i, name := range statusBitNames {
		bit := byte(1) << uint(7-i)
		if p&bit != 0 {
			flags.WriteString(name + " ")
		} else {
			flags.WriteString("  ")
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
 S: %02x
N V _ B D I Z C
%s
`,
		m.cpu.PC, m.prevPC,
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.S,
		flags.String(),
	)
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}
	page := m.cpu.PC &^ 0x00FF
	for i := uint16(0); i < 5; i++ {
		rows = append(rows, m.renderPage(page+i*16))
	}
	return strings.Join(rows, "\n")
}

// View renders the page table and register status side by side, with a
// go-spew dump of the raw opcode byte the processor is parked on beneath.
func (m model) View() string {
	opcode := m.bus.Read(m.cpu.PC)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(opcode),
	)
}

// Run loads program into a fresh Bus at offset, parks a new NES-profile
// Processor there, and starts an interactive single-stepping TUI.
func Run(program []byte, offset uint16) error {
	b := bus.New()
	loader.LoadRaw(b, program, offset)

	c := cpu.NewNESProcessor()
	c.PC = offset

	final, err := tea.NewProgram(model{cpu: c, bus: b}).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
