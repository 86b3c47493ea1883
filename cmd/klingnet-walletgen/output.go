package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/Klingon-tech/klingnet-walletgen/config"
	"github.com/Klingon-tech/klingnet-walletgen/internal/wallet"
)

const maxWidth = 80

// styles are built per render so colors follow the active profile.
type styles struct {
	accent lipgloss.Color
	red    lipgloss.Color

	title  lipgloss.Style
	label  lipgloss.Style
	box    lipgloss.Style
	secret lipgloss.Style
}

func newStyles() styles {
	s := styles{
		accent: lipgloss.Color(completeColor("#7D56F4", "99", "5")),
		red:    lipgloss.Color(completeColor("#FF4444", "196", "9")),
	}
	base := lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	s.title = lipgloss.NewStyle().Bold(true).Foreground(s.accent)
	s.label = lipgloss.NewStyle().Bold(true).Width(16) //nolint:mnd
	s.box = base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.accent).
		Padding(0, 1) //nolint:mnd
	s.secret = base.
		Foreground(s.red).
		Padding(0, 2) //nolint:mnd
	return s
}

// useStyle decides whether to render with lipgloss.
func useStyle(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
		return true
	case config.ColorNever:
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

func printJSON(w io.Writer, res *wallet.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// walletFields lists the printed fields in display order.
func walletFields(res *wallet.Result) [][2]string {
	return [][2]string{
		{"Network", res.Network},
		{"Path", res.Path},
		{"Address", res.Address},
		{"Script", res.ScriptPubKey},
		{"SegWit address", res.SegwitAddress},
		{"Account xpub", res.ExtendedPub},
		{"Private key", res.PrivateKeyWIF},
	}
}

func printWallet(w io.Writer, res *wallet.Result, styled bool) {
	if !styled {
		for _, f := range walletFields(res) {
			fmt.Fprintf(w, "%-16s %s\n", f[0]+":", f[1])
		}
		fmt.Fprintf(w, "%-16s %s\n", "Mnemonic:", res.Mnemonic)
		return
	}

	st := newStyles()
	var b strings.Builder
	b.WriteString(st.title.Render("Klingnet wallet"))
	b.WriteRune('\n')
	for _, f := range walletFields(res) {
		b.WriteString(st.label.Render(f[0]))
		b.WriteString(f[1])
		b.WriteRune('\n')
	}
	// Keys are never wrapped, so the box sizes to its content.
	_, _ = io.WriteString(w, st.box.Render(strings.TrimRight(b.String(), "\n")))
	_, _ = io.WriteString(w, "\n")

	note := "Mnemonic (write it down, anyone holding it controls the funds):\n\n" + res.Mnemonic
	renderBlock(w, st.secret, getWidth(maxWidth), note)
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxw
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}
