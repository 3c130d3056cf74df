package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"war/communication"
	"war/game"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	missionStyle = lipgloss.NewStyle().Italic(true)

	factionColors = map[game.Faction]lipgloss.Color{
		game.Blue:   lipgloss.Color("12"),
		game.Green:  lipgloss.Color("10"),
		game.Red:    lipgloss.Color("9"),
		game.Yellow: lipgloss.Color("11"),
		game.White:  lipgloss.Color("15"),
	}
)

type line struct {
	text string
	err  error
}

// Terminal is a line based Communicator over a reader and a writer.
// Input is read on a separate goroutine so that prompts can be cancelled.
type Terminal struct {
	in        *bufio.Reader
	out       io.Writer
	lines     chan line
	done      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
}

func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:    bufio.NewReader(in),
		out:   out,
		lines: make(chan line),
		done:  make(chan struct{}),
	}
}

// Close stops the input goroutine. A read blocked on the underlying reader only returns once that reader is closed.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() { close(t.done) })
}

func (t *Terminal) ShowMap(territories []game.Territory) {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers("#", "Territory", "Army", "Troops")
	for i, territory := range territories {
		tbl.Row(strconv.Itoa(i+1), territory.Name, factionLabel(territory.Owner), strconv.Itoa(territory.Troops))
	}

	fmt.Fprintln(t.out, titleStyle.Render("WORLD MAP"))
	fmt.Fprintln(t.out, tbl.Render())
}

func (t *Terminal) ShowMission(mission game.Mission) {
	fmt.Fprintf(t.out, "%s %s\n", titleStyle.Render("Your mission:"), missionStyle.Render(mission.Description()))
}

func (t *Terminal) ShowMenu() {
	fmt.Fprintln(t.out, titleStyle.Render("ACTIONS"))
	fmt.Fprintf(t.out, "%d - Attack\n", communication.AttackOption)
	fmt.Fprintf(t.out, "%d - Check mission\n", communication.CheckMissionOption)
	fmt.Fprintf(t.out, "%d - Quit\n", communication.QuitOption)
}

func (t *Terminal) ShowOutcome(outcome game.Outcome, attacker, defender game.Territory) {
	fmt.Fprintf(t.out, "Attacker (%s) rolled %s, defender (%s) rolled %s.\n",
		attacker.Name, formatRolls(outcome.AttackerRolls), defender.Name, formatRolls(outcome.DefenderRolls))
	if outcome.AttackerLosses > 0 {
		fmt.Fprintf(t.out, "%s lost %d troop(s).\n", attacker.Name, outcome.AttackerLosses)
	}
	if outcome.Conquered {
		fmt.Fprintf(t.out, "%s conquered %s! It is now held by the %s army.\n", attacker.Name, defender.Name, factionLabel(defender.Owner))
	} else if outcome.DefenderLosses > 0 {
		fmt.Fprintf(t.out, "%s lost %d troop(s).\n", defender.Name, outcome.DefenderLosses)
	}
}

func (t *Terminal) Message(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

func (t *Terminal) PromptInt(ctx context.Context, prompt string) (int, error) {
	fmt.Fprint(t.out, prompt)
	text, err := t.readLine(ctx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %.40q", communication.ErrInvalidInput, text)
	}
	return n, nil
}

func (t *Terminal) Pause(ctx context.Context) error {
	fmt.Fprint(t.out, "\nPress Enter to continue...")
	_, err := t.readLine(ctx)
	fmt.Fprintln(t.out)
	return err
}

// readLine returns io.EOF once the input is exhausted or the terminal is closed.
func (t *Terminal) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-t.done:
		return "", io.EOF
	default:
	}
	t.startOnce.Do(func() { go t.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-t.done:
		return "", io.EOF
	case l, ok := <-t.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (t *Terminal) readLines() {
	defer close(t.lines)
	for {
		text, err := t.in.ReadString('\n')
		if text != "" && !t.send(line{text: strings.TrimRight(text, "\r\n")}) {
			return
		}
		if err != nil {
			t.send(line{err: err})
			return
		}
	}
}

func (t *Terminal) send(l line) bool {
	select {
	case t.lines <- l:
		return true
	case <-t.done:
		return false
	}
}

func factionLabel(f game.Faction) string {
	color, ok := factionColors[f]
	if !ok {
		return string(f)
	}
	return lipgloss.NewStyle().Foreground(color).Render(string(f))
}

func formatRolls(rolls []int) string {
	parts := make([]string, len(rolls))
	for i, r := range rolls {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, ", ")
}
